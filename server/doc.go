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

// Package server exposes Latin hypercube generation over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /designs?dimensions=D&samples=N[&seed=S][&format=json|csv|xlsx][&precision=P]
//	GET /designs/histogram?dimensions=D&samples=N[&seed=S]&column=J[&bins=B]
//	GET /designs/points?dimensions=D&samples=N[&seed=S][&columns=1,2,3]
//
// Column numbers in queries are 1-based, matching the labels
// "Variable 1", "Variable 2", and so on. Every request generates a
// fresh design with its own random source; give a seed to get the
// same design back on a later request.
package server
