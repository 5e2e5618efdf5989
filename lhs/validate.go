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
	"math"

	"github.com/fentec-project/golhs/data"
	"github.com/pkg/errors"
)

// Validate checks the design's invariants: a non-empty rectangular
// shape, every value in [0, 1) and every column stratified.
func (d *Design) Validate() error {
	if d.Samples() == 0 || d.Dimensions() == 0 || len(d.labels) != d.Dimensions() {
		return ErrShape
	}
	for i, row := range d.rows {
		if len(row) != d.Dimensions() {
			return errors.Wrapf(ErrShape, "row %d has %d values", i, len(row))
		}
	}

	for j, col := range d.rows.Transpose() {
		if err := CheckStratified(col); err != nil {
			return errors.Wrapf(err, "column %q", d.labels[j])
		}
	}

	return nil
}

// CheckStratified checks that the n values of column, each multiplied
// by n and floored, are exactly the integers 0, 1, ..., n-1. Values
// outside [0, 1) yield ErrOutOfBounds, repeated strata ErrNotStratified.
func CheckStratified(column data.Vector) error {
	n := len(column)
	if n == 0 {
		return ErrShape
	}

	seen := make([]bool, n)
	for i, v := range column {
		if !(v >= 0 && v < 1) {
			return errors.Wrapf(ErrOutOfBounds, "row %d holds %v", i, v)
		}
		k := int(math.Floor(v * float64(n)))
		if k >= n {
			return errors.Wrapf(ErrNotStratified, "row %d holds %v beyond the last stratum", i, v)
		}
		if seen[k] {
			return errors.Wrapf(ErrNotStratified, "stratum %d is occupied twice", k)
		}
		seen[k] = true
	}

	return nil
}
