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

// Package sample provides the sources of randomness for the scheme.
//
// It contains the Sampler interface together with a uniform GF(16)
// sampler backed by an injectable entropy source, and the two
// deterministic byte-stream expanders the key material is derived
// with: AES-128-CTR keyed by a public seed, and the SHAKE256
// extendable-output function.
//
// Implementations of the Sampler interface can be used, for instance,
// to fill vector or matrix structures with the desired random data.
package sample
