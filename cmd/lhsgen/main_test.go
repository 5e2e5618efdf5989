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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fentec-project/golhs/lhs"
	"github.com/fentec-project/golhs/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CSV(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-dimensions", "3", "-samples", "25", "-seed", "42"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	d, err := tabular.ReadCSV(&stdout)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Dimensions())
	assert.Equal(t, 25, d.Samples())
	assert.NoError(t, d.Validate())

	var again bytes.Buffer
	require.Equal(t, 0, run([]string{"-dimensions", "3", "-samples", "25", "-seed", "42"}, &again, &stderr))
	d2, err := tabular.ReadCSV(&again)
	require.NoError(t, err)
	assert.True(t, d.Equal(d2))
}

func TestRun_File(t *testing.T) {
	out := filepath.Join(t.TempDir(), "design.xlsx")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-samples", "10", "-out", out}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	d, err := tabular.ReadXLSX(f)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Dimensions())
	assert.NoError(t, d.Validate())
}

func TestRun_Invalid(t *testing.T) {
	var tests = [][]string{
		{"-samples", "0"},
		{"-samples", "0.5"},
		{"-dimensions", "-1"},
		{"-dimensions", "1"},
		{"-seed", "abc"},
		{"-format", "pdf"},
		{"-samples", "1000", "-precision", "1"},
		{"-samples", "4", "-precision", "400"},
	}

	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, &stdout, &stderr), "args %v", args)
		assert.Contains(t, stderr.String(), "lhs: invalid")
		assert.Empty(t, stdout.String())
	}
}

func TestRun_NoFileOnRejectedOutput(t *testing.T) {
	dir := t.TempDir()
	var tests = [][]string{
		{"-format", "pdf", "-out", filepath.Join(dir, "design.pdf")},
		{"-samples", "1000", "-precision", "1", "-out", filepath.Join(dir, "design.csv")},
	}

	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(args, &stdout, &stderr), "args %v", args)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFile_RemovesPartialOutput(t *testing.T) {
	d, err := lhs.Generate(2, 10, lhs.WithSeed(1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "design.out")
	assert.Error(t, writeFile(path, d, "pdf", -1))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, writeFile(path, d, "csv", 3))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	back, err := tabular.ReadCSV(f)
	require.NoError(t, err)
	assert.NoError(t, back.Validate())
}

func TestOutputFormat(t *testing.T) {
	assert.Equal(t, "csv", outputFormat("", "-"))
	assert.Equal(t, "xlsx", outputFormat("", "a.XLSX"))
	assert.Equal(t, "json", outputFormat("", "a.json"))
	assert.Equal(t, "json", outputFormat("JSON", "a.csv"))
}
