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
	"github.com/fentec-project/golhs/sample"
	"github.com/pkg/errors"
)

// Engine generates Latin hypercube designs from the random source
// it owns. An Engine is not safe for concurrent use.
type Engine struct {
	src sample.Source
}

// NewEngine returns an Engine drawing from src.
func NewEngine(src sample.Source) *Engine {
	return &Engine{src: src}
}

// NewSeededEngine returns an Engine with a deterministic source.
// Two engines created with the same seed generate identical
// sequences of designs.
func NewSeededEngine(seed int64) *Engine {
	return NewEngine(sample.NewUniformSeeded(seed))
}

// Generate returns a design with the given number of dimensions
// (columns) and samples (rows). Both must be positive; otherwise an
// InvalidParameterError is returned and no randomness is consumed.
//
// For every dimension the engine draws one offset per stratum and
// then a permutation that assigns strata to rows. A failing source
// aborts generation; no partial design is returned.
func (e *Engine) Generate(dimensions, samples int) (*Design, error) {
	if err := checkCount("dimensions", dimensions); err != nil {
		return nil, err
	}
	if err := checkCount("samples", samples); err != nil {
		return nil, err
	}

	rows := data.NewConstantMatrix(samples, dimensions, 0)

	for j := 0; j < dimensions; j++ {
		offsets, err := data.NewRandomVector(samples, e.src)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot sample strata of dimension %d", j+1)
		}
		perm, err := sample.Permutation(e.src, samples)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot permute strata of dimension %d", j+1)
		}

		for k, u := range offsets {
			rows[perm[k]][j] = stratumValue(k, samples, u)
		}
	}

	return newDesign(rows), nil
}

// stratumValue maps offset u in [0, 1) into stratum k of n, that is
// to (k + u) / n. Rounding is corrected so that floor(v*n) == k holds
// exactly in floating point, which also keeps v below 1.
func stratumValue(k, n int, u float64) float64 {
	fk, fn := float64(k), float64(n)
	v := (fk + u) / fn

	for math.Floor(v*fn) > fk {
		v = math.Nextafter(v, 0)
	}
	for math.Floor(v*fn) < fk {
		v = math.Nextafter(v, 1)
	}

	return v
}

// Option configures a call to Generate.
type Option func(*options)

type options struct {
	seed   int64
	seeded bool
	src    sample.Source
}

// WithSeed fixes the random source of a Generate call, making the
// resulting design reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSource makes a Generate call draw from src. WithSeed takes
// precedence when both are given.
func WithSource(src sample.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// Generate returns a fresh design. Without options every call uses a
// new entropy-backed source, so concurrent calls are independent.
func Generate(dimensions, samples int, opts ...Option) (*Design, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var e *Engine
	switch {
	case o.seeded:
		e = NewSeededEngine(o.seed)
	case o.src != nil:
		e = NewEngine(o.src)
	default:
		e = NewEngine(sample.NewUniform())
	}

	d, err := e.Generate(dimensions, samples)
	if err != nil {
		return nil, err
	}
	if o.seeded {
		d.seed, d.seeded = o.seed, true
	}

	return d, nil
}

// GenerateFloat is Generate for callers holding the counts as
// float64 values. Counts that are not positive integers fail with an
// InvalidParameterError.
func GenerateFloat(dimensions, samples float64, opts ...Option) (*Design, error) {
	d, err := CountFromFloat("dimensions", dimensions)
	if err != nil {
		return nil, err
	}
	n, err := CountFromFloat("samples", samples)
	if err != nil {
		return nil, err
	}

	return Generate(d, n, opts...)
}
