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

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fentec-project/golhs/data"
	"github.com/fentec-project/golhs/lhs"
	"github.com/fentec-project/golhs/tabular"
	"github.com/pkg/errors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// designResponse omits Correlation for single-sample designs, whose
// correlations are undefined.
type designResponse struct {
	Dimensions  int                 `json:"dimensions"`
	Samples     int                 `json:"samples"`
	Seed        *int64              `json:"seed,omitempty"`
	Labels      []string            `json:"labels"`
	Rows        data.Matrix         `json:"rows"`
	Summaries   []lhs.ColumnSummary `json:"summaries"`
	Correlation data.Matrix         `json:"correlation,omitempty"`
}

type histogramResponse struct {
	Label  string    `json:"label"`
	Bins   int       `json:"bins"`
	Counts []float64 `json:"counts"`
}

type pointsResponse struct {
	Labels []string    `json:"labels"`
	Points [][]float64 `json:"points"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleDesign generates a design and sends it as JSON, CSV or XLSX.
func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	d, err := s.generate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	precision := s.cfg.Output.Precision
	if p := q.Get("precision"); p != "" {
		if precision, err = strconv.Atoi(p); err != nil {
			s.writeError(w, r, &lhs.InvalidParameterError{Param: "precision", Value: strconv.Quote(p), Reason: "must be an integer"})
			return
		}
	}
	if err := tabular.CheckPrecision(precision, d.Samples()); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := []tabular.Option{tabular.WithPrecision(precision)}

	switch format := strings.ToLower(q.Get("format")); format {
	case "", "json":
		s.writeDesignJSON(w, r, d)
	case "csv":
		var buf bytes.Buffer
		if err := tabular.WriteCSV(&buf, d, opts...); err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeAttachment(w, "text/csv; charset=utf-8", tabular.FileName(d, "csv"), buf.Bytes())
	case "xlsx":
		var buf bytes.Buffer
		if err := tabular.WriteXLSX(&buf, d, opts...); err != nil {
			s.writeError(w, r, err)
			return
		}
		s.writeAttachment(w, xlsxContentType, tabular.FileName(d, "xlsx"), buf.Bytes())
	default:
		s.writeError(w, r, &lhs.InvalidParameterError{Param: "format", Value: strconv.Quote(format), Reason: "must be json, csv or xlsx"})
	}
}

func (s *Server) writeDesignJSON(w http.ResponseWriter, r *http.Request, d *lhs.Design) {
	resp := designResponse{
		Dimensions: d.Dimensions(),
		Samples:    d.Samples(),
		Labels:     d.Labels(),
		Rows:       d.Matrix(),
		Summaries:  make([]lhs.ColumnSummary, d.Dimensions()),
	}
	if seed, ok := d.Seed(); ok {
		resp.Seed = &seed
	}
	for j := range resp.Summaries {
		sum, err := d.Summary(j)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		resp.Summaries[j] = sum
	}
	if d.Samples() > 1 {
		resp.Correlation = data.NewMatrixFromDense(d.Correlation())
	}

	s.writeJSON(w, http.StatusOK, resp)
}

// handleHistogram sends the bin counts of one column.
func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	d, err := s.generate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	column := 1
	if c := q.Get("column"); c != "" {
		if column, err = lhs.ParseCount("column", c); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	bins := d.Samples()
	if b := q.Get("bins"); b != "" {
		if bins, err = lhs.ParseCount("bins", b); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if err := s.cfg.Limits.CheckBins(bins); err != nil {
		s.writeError(w, r, err)
		return
	}

	counts, err := d.Histogram(column-1, bins)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, histogramResponse{
		Label:  d.Label(column - 1),
		Bins:   bins,
		Counts: counts,
	})
}

// handlePoints sends scatter coordinates of up to three columns.
func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	d, err := s.generate(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var cols []int
	if c := r.URL.Query().Get("columns"); c != "" {
		for _, field := range strings.Split(c, ",") {
			n, err := lhs.ParseCount("columns", field)
			if err != nil {
				s.writeError(w, r, err)
				return
			}
			cols = append(cols, n-1)
		}
	}

	points, err := d.Points(cols...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	labels := make([]string, len(points[0]))
	if len(cols) == 0 {
		for j := range labels {
			labels[j] = d.Label(j)
		}
	} else {
		for k, j := range cols {
			labels[k] = d.Label(j)
		}
	}

	s.writeJSON(w, http.StatusOK, pointsResponse{
		Labels: labels,
		Points: points,
	})
}

// generate parses dimensions, samples and seed from the query,
// applies the configured limits and generates a design.
func (s *Server) generate(r *http.Request) (*lhs.Design, error) {
	q := r.URL.Query()
	var err error

	dimensions := s.cfg.Defaults.Dimensions
	if v := q.Get("dimensions"); v != "" {
		if dimensions, err = lhs.ParseCount("dimensions", v); err != nil {
			return nil, err
		}
	}
	samples := s.cfg.Defaults.Samples
	if v := q.Get("samples"); v != "" {
		if samples, err = lhs.ParseCount("samples", v); err != nil {
			return nil, err
		}
	}
	if err := s.cfg.Limits.Check(dimensions, samples); err != nil {
		return nil, err
	}

	var opts []lhs.Option
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, &lhs.InvalidParameterError{Param: "seed", Value: strconv.Quote(v), Reason: "must be a 64-bit integer"}
		}
		opts = append(opts, lhs.WithSeed(seed))
	}

	s.log.Debug("generating %dx%d design id=%s", samples, dimensions, RequestID(r.Context()))

	return lhs.Generate(dimensions, samples, opts...)
}

func (s *Server) writeAttachment(w http.ResponseWriter, contentType, name string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("cannot encode response: %v", err)
	}
}

// writeError answers 400 for rejected parameters and 500 otherwise.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, lhs.ErrInvalidParameter) || errors.Is(err, lhs.ErrColumnIndex) {
		status = http.StatusBadRequest
	} else {
		s.log.Error("request %s failed: %+v", RequestID(r.Context()), err)
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}
