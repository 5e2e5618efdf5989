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
	"strconv"
	"strings"
)

// maxExactCount is the largest count a float64 holds exactly.
const maxExactCount = 1 << 53

// checkCount rejects non-positive counts.
func checkCount(name string, v int) error {
	if v <= 0 {
		return invalidParameter(name, strconv.Itoa(v), "must be a positive integer")
	}

	return nil
}

// CountFromFloat converts a count held as a float64 (for instance
// decoded from JSON) to an int. NaN, infinite, non-integer and
// non-positive values fail with an InvalidParameterError.
func CountFromFloat(name string, v float64) (int, error) {
	value := strconv.FormatFloat(v, 'g', -1, 64)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, invalidParameter(name, value, "must be a finite number")
	case v != math.Trunc(v):
		return 0, invalidParameter(name, value, "must be an integer")
	case v <= 0:
		return 0, invalidParameter(name, value, "must be a positive integer")
	case v > maxExactCount:
		return 0, invalidParameter(name, value, "is too large")
	}

	return int(v), nil
}

// ParseCount parses a textual count such as a flag or query value.
// "12" and "12.0" are accepted; "0.5", "-1", "0" and "abc" fail with
// an InvalidParameterError.
func ParseCount(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if err := checkCount(name, n); err != nil {
			return 0, err
		}
		return n, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalidParameter(name, strconv.Quote(s), "is not a number")
	}

	return CountFromFloat(name, v)
}
