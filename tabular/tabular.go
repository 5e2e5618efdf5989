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
	"fmt"
	"math"
	"strconv"

	"github.com/fentec-project/golhs/data"
	"github.com/fentec-project/golhs/lhs"
)

// Option configures an export.
type Option func(*options)

type options struct {
	precision int
	comma     rune
	sheet     string
}

// defaultSheet is the sheet every new workbook starts with.
const defaultSheet = "Sheet1"

func defaultOptions(opts []Option) options {
	o := options{
		precision: -1,
		comma:     ',',
		sheet:     defaultSheet,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPrecision sets the number of decimals written per value.
// A negative precision (the default) writes exact values.
func WithPrecision(precision int) Option {
	return func(o *options) {
		o.precision = precision
	}
}

// WithComma sets the field delimiter of CSV exports.
func WithComma(comma rune) Option {
	return func(o *options) {
		o.comma = comma
	}
}

// WithSheet sets the worksheet used by XLSX exports.
func WithSheet(sheet string) Option {
	return func(o *options) {
		o.sheet = sheet
	}
}

// FileName returns the conventional download name of an export of d,
// for instance "lhs_data_2d_100s.csv".
func FileName(d *lhs.Design, ext string) string {
	return fmt.Sprintf("lhs_data_%dd_%ds.%s", d.Dimensions(), d.Samples(), ext)
}

// MaxPrecision is the largest number of decimals an export can be
// limited to. Beyond it a snapped value no longer has an exact decimal
// form that parses back to the same float64.
const MaxPrecision = 15

// CheckPrecision reports whether values of a design with the given
// number of samples can be written with precision decimals and stay
// stratified. A negative precision (exact values) is always accepted.
// Otherwise 10^-precision must be at most half the stratum width
// 1/samples, and precision at most MaxPrecision.
func CheckPrecision(precision, samples int) error {
	if precision < 0 {
		return nil
	}
	value := strconv.Itoa(precision)
	if precision > MaxPrecision {
		return &lhs.InvalidParameterError{
			Param:  "precision",
			Value:  value,
			Reason: fmt.Sprintf("must be at most %d", MaxPrecision),
		}
	}
	if 2*int64(samples) > int64(math.Pow10(precision)) {
		return &lhs.InvalidParameterError{
			Param:  "precision",
			Value:  value,
			Reason: fmt.Sprintf("is too coarse for %d samples", samples),
		}
	}

	return nil
}

// snap limits v to precision decimals without leaving the stratum
// v occupies among n strata. The precision must pass CheckPrecision.
func snap(v float64, n, precision int) float64 {
	if precision < 0 {
		return v
	}

	scale := math.Pow10(precision)
	fn := float64(n)
	k := math.Floor(v * fn)

	t := math.Floor(v*scale) / scale
	if math.Floor(t*fn) != k {
		t = math.Ceil(v*scale) / scale
	}

	return t
}

// snapped returns the rows of d limited to precision decimals.
func snapped(d *lhs.Design, precision int) (data.Matrix, error) {
	n := d.Samples()
	if err := CheckPrecision(precision, n); err != nil {
		return nil, err
	}

	return d.Matrix().Apply(func(v float64) float64 {
		return snap(v, n, precision)
	}), nil
}

// Records renders d as string records: the header row followed by
// one record per sample. It fails with an lhs.InvalidParameterError
// if the precision does not pass CheckPrecision.
func Records(d *lhs.Design, opts ...Option) ([][]string, error) {
	o := defaultOptions(opts)
	rows, err := snapped(d, o.precision)
	if err != nil {
		return nil, err
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, d.Labels())
	for _, row := range rows {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = strconv.FormatFloat(v, 'f', o.precision, 64)
		}
		records = append(records, rec)
	}

	return records, nil
}
