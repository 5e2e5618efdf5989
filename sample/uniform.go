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
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// Uniform samples random values from the interval [0, 1)
// using the operating system's entropy. Two instances never
// produce the same sequence.
type Uniform struct {
	*stream
}

// NewUniform returns an instance of the Uniform sampler
// reading from crypto/rand.
func NewUniform() *Uniform {
	return NewUniformFrom(rand.Reader)
}

// NewUniformFrom returns an instance of the Uniform sampler
// that reads its random bits from r.
func NewUniformFrom(r io.Reader) *Uniform {
	return &Uniform{
		stream: newStream(func(buf []byte) error {
			if _, err := io.ReadFull(r, buf); err != nil {
				return errors.Wrap(err, "cannot read random bytes")
			}
			return nil
		}),
	}
}

// Sample samples a random value from the interval [0, 1).
func (u *Uniform) Sample() (float64, error) {
	x, err := u.Uint64()
	if err != nil {
		return 0, err
	}

	return unitFloat(x), nil
}
