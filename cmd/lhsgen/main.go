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

// Command lhsgen generates Latin hypercube designs.
//
// Without -serve it writes one design as CSV, XLSX or JSON:
//
//	lhsgen -dimensions 3 -samples 500 -seed 42 -out design.csv
//
// With -serve it runs the HTTP server on $PORT.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fentec-project/golhs/internal"
	"github.com/fentec-project/golhs/internal/config"
	"github.com/fentec-project/golhs/lhs"
	"github.com/fentec-project/golhs/server"
	"github.com/fentec-project/golhs/tabular"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "error loading configuration:", err)
		return 1
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.LogLevel), stderr)

	fs := flag.NewFlagSet("lhsgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dimensions := fs.String("dimensions", strconv.Itoa(cfg.Defaults.Dimensions), "number of dimensions (variables)")
	samples := fs.String("samples", strconv.Itoa(cfg.Defaults.Samples), "number of samples")
	seed := fs.String("seed", "", "RNG seed (deterministic); empty draws from entropy")
	format := fs.String("format", "", "output format: csv, xlsx or json (default inferred from -out, else csv)")
	precision := fs.Int("precision", cfg.Output.Precision, "decimals per value; negative writes exact values")
	out := fs.String("out", "-", "output file path; - for stdout, empty for lhs_data_<d>d_<n>s.<format>")
	serve := fs.Bool("serve", false, "run the HTTP server instead of writing a design")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *serve {
		if err := serveHTTP(cfg, logger); err != nil {
			logger.Error("server stopped: %v", err)
			return 1
		}
		return 0
	}

	d, err := generate(cfg, *dimensions, *samples, *seed)
	if err != nil {
		fmt.Fprintln(stderr, "error generating design:", err)
		if errors.Is(err, lhs.ErrInvalidParameter) {
			return 2
		}
		return 1
	}

	fmtName := outputFormat(*format, *out)
	if err := checkOutput(fmtName, *precision, d.Samples()); err != nil {
		fmt.Fprintln(stderr, "error writing design:", err)
		return 2
	}

	path := *out
	if path == "" {
		path = tabular.FileName(d, fmtName)
	}

	if path == "-" {
		err = write(stdout, d, fmtName, *precision)
	} else {
		err = writeFile(path, d, fmtName, *precision)
	}
	if err != nil {
		fmt.Fprintln(stderr, "error writing design:", err)
		return 1
	}
	logger.Info("wrote %dx%d design to %s", d.Samples(), d.Dimensions(), path)

	return 0
}

// generate validates the textual parameters against the configured
// limits and generates a design.
func generate(cfg *config.Config, dimensions, samples, seed string) (*lhs.Design, error) {
	d, err := lhs.ParseCount("dimensions", dimensions)
	if err != nil {
		return nil, err
	}
	n, err := lhs.ParseCount("samples", samples)
	if err != nil {
		return nil, err
	}
	if err := cfg.Limits.Check(d, n); err != nil {
		return nil, err
	}

	var opts []lhs.Option
	if seed != "" {
		s, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, &lhs.InvalidParameterError{Param: "seed", Value: strconv.Quote(seed), Reason: "must be a 64-bit integer"}
		}
		opts = append(opts, lhs.WithSeed(s))
	}

	return lhs.Generate(d, n, opts...)
}

func outputFormat(format, out string) string {
	if f := strings.ToLower(strings.TrimSpace(format)); f != "" {
		return f
	}
	switch strings.ToLower(filepath.Ext(out)) {
	case ".xlsx":
		return "xlsx"
	case ".json":
		return "json"
	default:
		return "csv"
	}
}

// checkOutput rejects unknown formats and precisions that would
// break the stratification of an export with the given samples.
func checkOutput(format string, precision, samples int) error {
	switch format {
	case "csv", "xlsx", "json":
	default:
		return &lhs.InvalidParameterError{Param: "format", Value: strconv.Quote(format), Reason: "must be csv, xlsx or json"}
	}

	return tabular.CheckPrecision(precision, samples)
}

// writeFile writes d to path. A partially written file is removed.
func writeFile(path string, d *lhs.Design, format string, precision int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "cannot create output")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "cannot close output")
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return write(f, d, format, precision)
}

func write(w io.Writer, d *lhs.Design, format string, precision int) error {
	switch format {
	case "csv":
		return tabular.WriteCSV(w, d, tabular.WithPrecision(precision))
	case "xlsx":
		return tabular.WriteXLSX(w, d, tabular.WithPrecision(precision))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Labels []string    `json:"labels"`
			Rows   interface{} `json:"rows"`
		}{d.Labels(), d.Matrix()})
	default:
		return errors.Errorf("unsupported format %q", format)
	}
}

// serveHTTP runs the server until SIGINT or SIGTERM, then shuts it
// down gracefully.
func serveHTTP(cfg *config.Config, logger *internal.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.New(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
