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
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/fentec-project/golhs/data"
	"github.com/fentec-project/golhs/internal"
	"github.com/fentec-project/golhs/lhs"
	"github.com/pkg/errors"
)

// WriteCSV writes d to w as delimited text. Nothing is written if the
// precision does not pass CheckPrecision.
func WriteCSV(w io.Writer, d *lhs.Design, opts ...Option) error {
	o := defaultOptions(opts)

	records, err := Records(d, opts...)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = o.comma
	if err := cw.WriteAll(records); err != nil {
		return errors.Wrap(err, "cannot write csv")
	}

	return nil
}

// ReadCSV reads a design written by WriteCSV. Only WithComma
// applies. Tables with a wrong header, ragged rows or non-numeric
// cells yield an error wrapping internal.MalformedTable or
// internal.MalformedHeader.
func ReadCSV(r io.Reader, opts ...Option) (*lhs.Design, error) {
	o := defaultOptions(opts)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(internal.MalformedTable, err.Error())
	}

	return parseRecords(records)
}

// parseRecords turns a header row plus value rows into a design.
func parseRecords(records [][]string) (*lhs.Design, error) {
	if len(records) < 2 {
		return nil, errors.Wrap(internal.MalformedTable, "no samples")
	}

	header := records[0]
	if len(header) == 0 {
		return nil, internal.MalformedHeader
	}
	for j, label := range header {
		if strings.TrimSpace(label) != lhs.ColumnLabel(j) {
			return nil, errors.Wrapf(internal.MalformedHeader, "column %d is %q, want %q", j+1, label, lhs.ColumnLabel(j))
		}
	}

	rows := make([]data.Vector, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, errors.Wrapf(internal.MalformedTable, "row %d has %d fields, want %d", i+1, len(rec), len(header))
		}
		row := make(data.Vector, len(rec))
		for j, cell := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, errors.Wrapf(internal.MalformedTable, "row %d column %d: %q", i+1, j+1, cell)
			}
			row[j] = v
		}
		rows[i] = row
	}

	d, err := lhs.NewDesign(rows)
	if err != nil {
		return nil, errors.Wrap(internal.MalformedTable, err.Error())
	}

	return d, nil
}
