/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package tabular

import (
	"io"

	"github.com/fentec-project/golhs/internal"
	"github.com/fentec-project/golhs/lhs"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// WriteXLSX writes d to w as an XLSX workbook with a single sheet.
// Nothing is written if the precision does not pass CheckPrecision.
func WriteXLSX(w io.Writer, d *lhs.Design, opts ...Option) error {
	o := defaultOptions(opts)

	rows, err := snapped(d, o.precision)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if o.sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, o.sheet); err != nil {
			return errors.Wrap(err, "cannot name sheet")
		}
	}

	// Header row
	header := make([]interface{}, d.Dimensions())
	for j, label := range d.Labels() {
		header[j] = label
	}
	if err := f.SetSheetRow(o.sheet, "A1", &header); err != nil {
		return errors.Wrap(err, "cannot write header")
	}

	// Data rows
	for i, values := range rows {
		row := make([]interface{}, len(values))
		for j, v := range values {
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(o.sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "cannot write row %d", i+1)
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "cannot write xlsx")
	}

	return nil
}

// ReadXLSX reads a design written by WriteXLSX. Only WithSheet
// applies.
func ReadXLSX(r io.Reader, opts ...Option) (*lhs.Design, error) {
	o := defaultOptions(opts)

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(internal.MalformedInput, err.Error())
	}
	defer f.Close()

	rows, err := f.GetRows(o.sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrapf(internal.MalformedTable, "cannot read %s: %v", o.sheet, err)
	}

	return parseRecords(rows)
}
