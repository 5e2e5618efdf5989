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

// Package tabular exports Latin hypercube designs as delimited text
// (CSV) and as XLSX workbooks, and reads such exports back.
//
// Every export has a header row holding the column labels
// ("Variable 1", "Variable 2", ...) followed by one row per sample.
// By default values are written with the shortest decimal form that
// parses back to the identical float64, so a design survives a round
// trip bit for bit. WithPrecision limits the number of decimals; the
// value is then truncated and, where truncation would move it into a
// lower stratum, rounded up instead. Exports are refused unless
// 10^-precision is at most half the stratum width, which keeps them
// stratified; see CheckPrecision.
package tabular
