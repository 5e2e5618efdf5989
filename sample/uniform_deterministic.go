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
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// UniformDet samples (deterministic) random values from the
// interval [0, 1). The values are taken from a salsa20 keystream,
// hence the key fully determines the sequence.
type UniformDet struct {
	*stream
	key *[32]byte
	// counter is used as the salsa20 nonce of the next refill
	counter uint64
}

// NewUniformDet returns an instance of the UniformDet sampler.
// It accepts a key determining the pseudo-random generator.
func NewUniformDet(key *[32]byte) *UniformDet {
	u := &UniformDet{key: key}
	u.stream = newStream(u.fill)

	return u
}

// NewUniformSeeded returns an instance of the UniformDet sampler
// whose key is the SHA-256 hash of the big-endian bytes of seed.
func NewUniformSeeded(seed int64) *UniformDet {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(seed))
	key := sha256.Sum256(b[:])

	return NewUniformDet(&key)
}

// fill overwrites buf with the next block of keystream. Every
// refill uses a fresh nonce, so no keystream is ever reused.
func (u *UniformDet) fill(buf []byte) error {
	nonce := make([]byte, 8)
	binary.BigEndian.PutUint64(nonce, u.counter)
	u.counter++

	in := make([]byte, len(buf)) // input is initialized to zeros
	salsa20.XORKeyStream(buf, in, nonce, u.key)

	return nil
}

// Sample samples a random value from the interval [0, 1).
func (u *UniformDet) Sample() (float64, error) {
	x, err := u.Uint64()
	if err != nil {
		return 0, err
	}

	return unitFloat(x), nil
}
