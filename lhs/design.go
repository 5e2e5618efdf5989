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

package lhs

import (
	"fmt"

	"github.com/fentec-project/golhs/data"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Design is a Latin hypercube design: Samples() rows by Dimensions()
// columns of values in [0, 1). Column j is labelled "Variable j+1".
// Row order carries no meaning.
type Design struct {
	labels []string
	rows   data.Matrix
	seed   int64
	seeded bool
}

// ColumnLabel returns the label of the column with index j.
func ColumnLabel(j int) string {
	return fmt.Sprintf("Variable %d", j+1)
}

func columnLabels(dimensions int) []string {
	labels := make([]string, dimensions)
	for j := range labels {
		labels[j] = ColumnLabel(j)
	}
	return labels
}

// newDesign takes ownership of rows.
func newDesign(rows data.Matrix) *Design {
	return &Design{
		labels: columnLabels(rows.Cols()),
		rows:   rows,
	}
}

// NewDesign wraps a copy of an existing table, for instance one read
// back from an export, so that it can be inspected and validated.
// It returns ErrShape if m is empty or not rectangular. The values
// themselves are not checked; call Validate for that.
func NewDesign(m data.Matrix) (*Design, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, ErrShape
	}
	rows, err := data.NewMatrix(m)
	if err != nil {
		return nil, errors.Wrap(ErrShape, err.Error())
	}

	return newDesign(rows.Copy()), nil
}

// Samples returns the number of rows.
func (d *Design) Samples() int {
	return d.rows.Rows()
}

// Dimensions returns the number of columns.
func (d *Design) Dimensions() int {
	return d.rows.Cols()
}

// At returns the value of row i in column j. It panics if either
// index is out of range.
func (d *Design) At(i, j int) float64 {
	return d.rows[i][j]
}

// Row returns a copy of row i.
func (d *Design) Row(i int) (data.Vector, error) {
	if i < 0 || i >= d.Samples() {
		return nil, errors.Wrapf(ErrColumnIndex, "row %d of %d", i, d.Samples())
	}

	return d.rows[i].Copy(), nil
}

// Column returns a copy of column j.
func (d *Design) Column(j int) (data.Vector, error) {
	col, err := d.rows.GetCol(j)
	if err != nil {
		return nil, errors.Wrapf(ErrColumnIndex, "column %d of %d", j, d.Dimensions())
	}

	return col, nil
}

// Labels returns the column labels in column order.
func (d *Design) Labels() []string {
	return append([]string(nil), d.labels...)
}

// Label returns the label of column j, or "" if j is out of range.
func (d *Design) Label(j int) string {
	if j < 0 || j >= len(d.labels) {
		return ""
	}
	return d.labels[j]
}

// ColumnIndex returns the index of the column with the given label.
func (d *Design) ColumnIndex(label string) (int, error) {
	for j, l := range d.labels {
		if l == label {
			return j, nil
		}
	}

	return -1, errors.Wrapf(ErrUnknownColumn, "%q", label)
}

// ColumnByLabel returns a copy of the column with the given label.
func (d *Design) ColumnByLabel(label string) (data.Vector, error) {
	j, err := d.ColumnIndex(label)
	if err != nil {
		return nil, err
	}

	return d.Column(j)
}

// Matrix returns a deep copy of the design's rows.
func (d *Design) Matrix() data.Matrix {
	return d.rows.Copy()
}

// Dense returns the design as a gonum matrix.
func (d *Design) Dense() *mat.Dense {
	return d.rows.Dense()
}

// Seed returns the seed the design was generated with. The second
// result is false for designs drawn from entropy or from a caller
// supplied source.
func (d *Design) Seed() (int64, bool) {
	return d.seed, d.seeded
}

// Equal reports whether d and other hold bit-identical tables.
func (d *Design) Equal(other *Design) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.rows.Equal(other.rows)
}
