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
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Histogram counts the values of column j in bins equal-width bins
// over [0, 1). With bins equal to Samples() every bin holds exactly
// one value.
func (d *Design) Histogram(j, bins int) ([]float64, error) {
	if err := checkCount("bins", bins); err != nil {
		return nil, err
	}
	col, err := d.Column(j)
	if err != nil {
		return nil, err
	}
	if err := col.CheckRange(0, 1); err != nil {
		return nil, errors.Wrap(ErrOutOfBounds, err.Error())
	}

	dividers := make([]float64, bins+1)
	for i := range dividers {
		dividers[i] = float64(i) / float64(bins)
	}

	return stat.Histogram(nil, dividers, col.Sorted(), nil), nil
}

// Points returns the coordinates of every sample projected onto the
// given columns, ready for a scatter plot. Without columns the first
// three (or fewer) columns are used.
func (d *Design) Points(cols ...int) ([][]float64, error) {
	if len(cols) == 0 {
		for j := 0; j < d.Dimensions() && j < 3; j++ {
			cols = append(cols, j)
		}
	}
	for _, j := range cols {
		if j < 0 || j >= d.Dimensions() {
			return nil, errors.Wrapf(ErrColumnIndex, "column %d of %d", j, d.Dimensions())
		}
	}

	points := make([][]float64, d.Samples())
	for i, row := range d.rows {
		p := make([]float64, len(cols))
		for k, j := range cols {
			p[k] = row[j]
		}
		points[i] = p
	}

	return points, nil
}

// ColumnSummary holds descriptive statistics of one column.
type ColumnSummary struct {
	Label  string  `json:"label"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

// Summary describes column j.
func (d *Design) Summary(j int) (ColumnSummary, error) {
	col, err := d.Column(j)
	if err != nil {
		return ColumnSummary{}, err
	}
	s := ColumnSummary{Label: d.labels[j]}
	values := stats.Float64Data(col)

	if s.Mean, err = stats.Mean(values); err != nil {
		return ColumnSummary{}, errors.Wrap(err, "cannot compute mean")
	}
	if s.StdDev, err = stats.StandardDeviation(values); err != nil {
		return ColumnSummary{}, errors.Wrap(err, "cannot compute standard deviation")
	}
	if s.Min, err = stats.Min(values); err != nil {
		return ColumnSummary{}, errors.Wrap(err, "cannot compute minimum")
	}
	if s.Max, err = stats.Max(values); err != nil {
		return ColumnSummary{}, errors.Wrap(err, "cannot compute maximum")
	}
	if s.Median, err = stats.Median(values); err != nil {
		return ColumnSummary{}, errors.Wrap(err, "cannot compute median")
	}

	return s, nil
}

// Correlation returns the Pearson correlation matrix of the columns.
// Entries are NaN for a single-sample design.
func (d *Design) Correlation() *mat.SymDense {
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, d.Dense(), nil)

	return &corr
}
