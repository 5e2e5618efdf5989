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

package sample

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// Sampler samples random values from the interval [0, 1).
type Sampler interface {
	Sample() (float64, error)
}

// Source is a Sampler that also exposes the raw uniform bits
// it is built on.
type Source interface {
	Sampler
	Uint64() (uint64, error)
}

// bufSize is the number of random bytes fetched per refill.
const bufSize = 512

// stream hands out uint64 values from a buffer that is
// refilled on demand by fill.
type stream struct {
	buf  []byte
	pos  int
	fill func([]byte) error
}

func newStream(fill func([]byte) error) *stream {
	buf := make([]byte, bufSize)
	return &stream{
		buf:  buf,
		pos:  len(buf),
		fill: fill,
	}
}

func (s *stream) Uint64() (uint64, error) {
	if s.pos+8 > len(s.buf) {
		if err := s.fill(s.buf); err != nil {
			return 0, err
		}
		s.pos = 0
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos:])
	s.pos += 8

	return v, nil
}

// unitFloat maps the top 53 bits of x to a float64 in [0, 1).
// Every result is a multiple of 2^-53 and strictly smaller than 1.
func unitFloat(x uint64) float64 {
	return float64(x>>11) * 0x1p-53
}

// Intn returns a uniformly random integer from [0, n).
// Values from the incomplete tail of the uint64 range are
// rejected, so the result carries no modulo bias.
func Intn(src Source, n int) (int, error) {
	if n <= 0 {
		return 0, errors.Errorf("upper bound should be positive, got %d", n)
	}

	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v, err := src.Uint64()
		if err != nil {
			return 0, errors.Wrap(err, "error while sampling")
		}
		if v < limit {
			return int(v % bound), nil
		}
	}
}

// Permutation returns a uniformly random permutation of the
// integers 0, 1, ..., n-1, drawn with a Fisher-Yates shuffle.
func Permutation(src Source, n int) ([]int, error) {
	if n < 0 {
		return nil, errors.Errorf("permutation length should be non-negative, got %d", n)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j, err := Intn(src, i+1)
		if err != nil {
			return nil, err
		}
		perm[i], perm[j] = perm[j], perm[i]
	}

	return perm, nil
}
