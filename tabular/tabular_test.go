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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fentec-project/golhs/data"
	"github.com/fentec-project/golhs/internal"
	"github.com/fentec-project/golhs/lhs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSV_RoundTrip(t *testing.T) {
	var tests = []struct {
		name       string
		dimensions int
		samples    int
		opts       []Option
		exact      bool
	}{
		{name: "exact", dimensions: 3, samples: 200, exact: true},
		{name: "semicolon", dimensions: 2, samples: 10, opts: []Option{WithComma(';')}, exact: true},
		{name: "six decimals", dimensions: 4, samples: 1000, opts: []Option{WithPrecision(6)}},
		{name: "two decimals", dimensions: 2, samples: 3, opts: []Option{WithPrecision(2)}},
		{name: "single sample", dimensions: 1, samples: 1, opts: []Option{WithPrecision(1)}},
		{name: "finest precision", dimensions: 2, samples: 1000, opts: []Option{WithPrecision(MaxPrecision)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := lhs.Generate(test.dimensions, test.samples, lhs.WithSeed(99))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, d, test.opts...))

			back, err := ReadCSV(&buf, test.opts...)
			require.NoError(t, err)
			assert.Equal(t, d.Samples(), back.Samples())
			assert.Equal(t, d.Dimensions(), back.Dimensions())
			assert.Equal(t, d.Labels(), back.Labels())
			assert.NoError(t, back.Validate())
			if test.exact {
				assert.True(t, d.Equal(back), "values should survive bit for bit")
			}
		})
	}
}

func TestCSV_Format(t *testing.T) {
	d, err := lhs.Generate(2, 4, lhs.WithSeed(42))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, d, WithPrecision(3)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Variable 1,Variable 2", lines[0])
	for _, line := range lines[1:] {
		for _, cell := range strings.Split(line, ",") {
			assert.Len(t, cell, 5, "cell %q should have three decimals", cell)
		}
	}
}

func TestSnap(t *testing.T) {
	// 0.3335 lies in stratum 1 of 3; truncating to 0.33 would leave it
	assert.Equal(t, 0.34, snap(0.3335, 3, 2))
	assert.Equal(t, 0.12, snap(0.1299, 3, 2))
	assert.Equal(t, 0.5, snap(0.5, 2, -1))
}

func TestCheckPrecision(t *testing.T) {
	var tests = []struct {
		precision int
		samples   int
		valid     bool
	}{
		{precision: -1, samples: 1000000, valid: true},
		{precision: 1, samples: 5, valid: true},
		{precision: 1, samples: 6, valid: false},
		{precision: 1, samples: 1000, valid: false},
		{precision: 3, samples: 500, valid: true},
		{precision: 3, samples: 501, valid: false},
		{precision: 0, samples: 1, valid: false},
		{precision: MaxPrecision, samples: 10000, valid: true},
		{precision: MaxPrecision + 1, samples: 1, valid: false},
		{precision: 400, samples: 4, valid: false},
	}

	for _, test := range tests {
		err := CheckPrecision(test.precision, test.samples)
		if test.valid {
			assert.NoError(t, err, "precision %d, %d samples", test.precision, test.samples)
			continue
		}
		assert.True(t, errors.Is(err, lhs.ErrInvalidParameter), "precision %d, %d samples: %v", test.precision, test.samples, err)
	}
}

func TestWrite_CoarsePrecision(t *testing.T) {
	var tests = []struct {
		name      string
		samples   int
		precision int
	}{
		{"one decimal for 1000 samples", 1000, 1},
		{"beyond float64", 4, 400},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := lhs.Generate(2, test.samples, lhs.WithSeed(1))
			require.NoError(t, err)

			var buf bytes.Buffer
			err = WriteCSV(&buf, d, WithPrecision(test.precision))
			assert.True(t, errors.Is(err, lhs.ErrInvalidParameter), "got %v", err)
			assert.Zero(t, buf.Len(), "nothing should be written")

			err = WriteXLSX(&buf, d, WithPrecision(test.precision))
			assert.True(t, errors.Is(err, lhs.ErrInvalidParameter), "got %v", err)
			assert.Zero(t, buf.Len(), "nothing should be written")

			_, err = Records(d, WithPrecision(test.precision))
			assert.Error(t, err)
		})
	}
}

func TestRecords(t *testing.T) {
	d, err := lhs.NewDesign(data.Matrix{{0.3335, 0.1299}, {0.1299, 0.3335}, {0.9, 0.7}})
	require.NoError(t, err)

	records, err := Records(d, WithPrecision(2))
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Variable 1", "Variable 2"},
		{"0.34", "0.12"},
		{"0.12", "0.34"},
		{"0.90", "0.70"},
	}, records)

	records, err = Records(d)
	require.NoError(t, err)
	assert.Equal(t, []string{"0.3335", "0.1299"}, records[1])
}

func TestReadCSV_Malformed(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", internal.MalformedTable},
		{"header only", "Variable 1\n", internal.MalformedTable},
		{"wrong label", "Var 1\n0.5\n", internal.MalformedHeader},
		{"ragged", "Variable 1,Variable 2\n0.5\n", internal.MalformedTable},
		{"not a number", "Variable 1\nabc\n", internal.MalformedTable},
		{"broken quoting", "Variable 1\n\"0.5\n", internal.MalformedTable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(test.in))
			assert.True(t, errors.Is(err, test.err), "got %v", err)
		})
	}
}

func TestReadCSV_NotStratified(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("Variable 1\n0.1\n0.2\n"))
	require.NoError(t, err)
	assert.True(t, errors.Is(d.Validate(), lhs.ErrNotStratified))
}

func TestXLSX_RoundTrip(t *testing.T) {
	d, err := lhs.Generate(3, 50, lhs.WithSeed(5))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, d))
	back, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
	assert.NoError(t, back.Validate())

	buf.Reset()
	require.NoError(t, WriteXLSX(&buf, d, WithSheet("Design"), WithPrecision(4)))
	back, err = ReadXLSX(bytes.NewReader(buf.Bytes()), WithSheet("Design"))
	require.NoError(t, err)
	assert.NoError(t, back.Validate())
}

func TestXLSX_SingleSheet(t *testing.T) {
	d, err := lhs.Generate(2, 10, lhs.WithSeed(5))
	require.NoError(t, err)

	for _, sheet := range []string{"Sheet1", "Design"} {
		var buf bytes.Buffer
		require.NoError(t, WriteXLSX(&buf, d, WithSheet(sheet)))

		f, err := excelize.OpenReader(&buf)
		require.NoError(t, err)
		assert.Equal(t, []string{sheet}, f.GetSheetList())
		require.NoError(t, f.Close())
	}
}

func TestReadXLSX_Malformed(t *testing.T) {
	_, err := ReadXLSX(strings.NewReader("not a workbook"))
	assert.True(t, errors.Is(err, internal.MalformedInput), "got %v", err)
}

func TestFileName(t *testing.T) {
	d, err := lhs.Generate(2, 100)
	require.NoError(t, err)
	assert.Equal(t, "lhs_data_2d_100s.csv", FileName(d, "csv"))
	assert.Equal(t, "lhs_data_2d_100s.xlsx", FileName(d, "xlsx"))
}
