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
	"errors"
	"testing"

	"github.com/fentec-project/golhs/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesign_Accessors(t *testing.T) {
	d, err := NewDesign(data.Matrix{
		data.Vector{0.1, 0.6},
		data.Vector{0.7, 0.2},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.6, d.At(0, 1))
	assert.Equal(t, "Variable 2", d.Label(1))
	assert.Equal(t, "", d.Label(2))

	row, err := d.Row(1)
	require.NoError(t, err)
	assert.Equal(t, data.Vector{0.7, 0.2}, row)
	_, err = d.Row(2)
	assert.True(t, errors.Is(err, ErrColumnIndex))

	col, err := d.ColumnByLabel("Variable 1")
	require.NoError(t, err)
	assert.Equal(t, data.Vector{0.1, 0.7}, col)

	_, err = d.ColumnByLabel("Variable 3")
	assert.True(t, errors.Is(err, ErrUnknownColumn))
	_, err = d.Column(-1)
	assert.True(t, errors.Is(err, ErrColumnIndex))

	dense := d.Dense()
	r, c := dense.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)

	assert.NoError(t, d.Validate())
}

func TestDesign_Immutable(t *testing.T) {
	d, err := Generate(3, 5, WithSeed(1))
	require.NoError(t, err)
	before := d.Matrix()

	col, _ := d.Column(0)
	col[0] = 5
	row, _ := d.Row(0)
	row[1] = 5
	m := d.Matrix()
	m[2][2] = 5
	labels := d.Labels()
	labels[0] = "changed"

	assert.True(t, before.Equal(d.Matrix()))
	assert.Equal(t, "Variable 1", d.Label(0))
}

func TestDesign_EqualNil(t *testing.T) {
	d, err := Generate(2, 3, WithSeed(1))
	require.NoError(t, err)

	var none *Design
	assert.False(t, d.Equal(nil))
	assert.False(t, none.Equal(d))
	assert.True(t, none.Equal(nil))
	assert.True(t, d.Equal(d))
}

func TestNewDesign_Shape(t *testing.T) {
	_, err := NewDesign(nil)
	assert.True(t, errors.Is(err, ErrShape))

	_, err = NewDesign(data.Matrix{data.Vector{}})
	assert.True(t, errors.Is(err, ErrShape))

	_, err = NewDesign(data.Matrix{data.Vector{0.1, 0.2}, data.Vector{0.3}})
	assert.True(t, errors.Is(err, ErrShape))

	// NewDesign copies its input
	m := data.Matrix{data.Vector{0.5}}
	d, err := NewDesign(m)
	require.NoError(t, err)
	m[0][0] = 0.9
	assert.Equal(t, 0.5, d.At(0, 0))
}

func TestDesign_Validate(t *testing.T) {
	var tests = []struct {
		name string
		m    data.Matrix
		err  error
	}{
		{
			name: "valid",
			m:    data.Matrix{data.Vector{0.75}, data.Vector{0.25}},
		},
		{
			name: "stratum twice",
			m:    data.Matrix{data.Vector{0.1}, data.Vector{0.2}},
			err:  ErrNotStratified,
		},
		{
			name: "one",
			m:    data.Matrix{data.Vector{1}, data.Vector{0.2}},
			err:  ErrOutOfBounds,
		},
		{
			name: "negative",
			m:    data.Matrix{data.Vector{-0.1}, data.Vector{0.7}},
			err:  ErrOutOfBounds,
		},
		{
			name: "second column",
			m:    data.Matrix{data.Vector{0.1, 0.6}, data.Vector{0.6, 0.7}},
			err:  ErrNotStratified,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := NewDesign(test.m)
			require.NoError(t, err)
			err = d.Validate()
			if test.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, test.err), "got %v", err)
		})
	}
}

func TestDesign_Visualize(t *testing.T) {
	d, err := Generate(4, 100, WithSeed(5))
	require.NoError(t, err)

	counts, err := d.Histogram(2, 10)
	require.NoError(t, err)
	for _, c := range counts {
		assert.Equal(t, 10.0, c)
	}
	_, err = d.Histogram(0, 0)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = d.Histogram(4, 10)
	assert.True(t, errors.Is(err, ErrColumnIndex))

	points, err := d.Points()
	require.NoError(t, err)
	require.Len(t, points, 100)
	assert.Len(t, points[0], 3)
	assert.Equal(t, d.At(10, 2), points[10][2])

	points, err = d.Points(3, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{d.At(0, 3), d.At(0, 0)}, points[0])
	_, err = d.Points(7)
	assert.True(t, errors.Is(err, ErrColumnIndex))

	s, err := d.Summary(1)
	require.NoError(t, err)
	assert.Equal(t, "Variable 2", s.Label)
	assert.InDelta(t, 0.5, s.Mean, 0.01)
	assert.InDelta(t, 0.5, s.Median, 0.02)
	assert.True(t, s.Min >= 0 && s.Min < 0.01)
	assert.True(t, s.Max >= 0.99 && s.Max < 1)
	assert.InDelta(t, 0.2887, s.StdDev, 0.01)
}

func TestDesign_HistogramOutOfRange(t *testing.T) {
	d, err := NewDesign(data.Matrix{data.Vector{1.5}})
	require.NoError(t, err)
	_, err = d.Histogram(0, 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}
