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

// Package sample includes the random sources used to build
// Latin hypercube designs.
//
// Package sample provides the Sampler and Source interfaces
// along with two implementations of Source: Uniform, which draws
// from the operating system's entropy pool, and UniformDet, which
// expands a 32 byte key (or an int64 seed) into a reproducible
// salsa20 keystream.
//
// On top of a Source the package offers unbiased bounded integers
// (Intn) and uniformly random permutations (Permutation), which are
// the two building blocks of stratum assignment.
//
// A Source is not safe for concurrent use. Give every goroutine its
// own Source, or wrap a shared one with NewLocked.
package sample
