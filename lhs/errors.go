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

	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter indicates a non-positive or non-integer
	// dimension or sample count.
	ErrInvalidParameter = errors.New("lhs: invalid parameter")
	// ErrShape indicates a table that is empty or not rectangular.
	ErrShape = errors.New("lhs: design must be a non-empty rectangular table")
	// ErrOutOfBounds indicates a value outside [0, 1).
	ErrOutOfBounds = errors.New("lhs: value outside [0, 1)")
	// ErrNotStratified indicates a column that does not hold exactly one
	// value per stratum.
	ErrNotStratified = errors.New("lhs: column is not stratified")
	// ErrUnknownColumn indicates a label that names no column.
	ErrUnknownColumn = errors.New("lhs: unknown column label")
	// ErrColumnIndex indicates a row or column index out of range.
	ErrColumnIndex = errors.New("lhs: index out of range")
)

// InvalidParameterError reports which parameter was rejected and why.
// It matches ErrInvalidParameter under errors.Is.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("lhs: invalid %s %s: %s", e.Param, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidParameter.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalidParameter(param, value, reason string) error {
	return &InvalidParameterError{
		Param:  param,
		Value:  value,
		Reason: reason,
	}
}
