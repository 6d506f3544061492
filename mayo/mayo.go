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

// Package mayo implements the MAYO multivariate-quadratic signature
// scheme over GF(16).
//
// The public key defines M quadratic polynomials in N variables.
// Signing samples the vinegar coordinates of a solution vector at
// random, linearizes the remaining oil coordinates into a system of
// M equations, and solves it with Gauss-Jordan elimination, retrying
// with a fresh salt and fresh vinegar when the system is inconsistent.
// Verification re-evaluates the public map on the solution vector and
// compares the result to the target derived from the message digest
// and the salt.
//
// Compact keys hold only seeds (plus the packed P3 matrices in the
// public key); the large P1 and P2 matrices are re-derived from the
// public seed with AES-128-CTR, and the secret expansion with
// SHAKE256, whenever they are needed.
package mayo

import (
	"crypto/rand"
	"io"

	"github.com/fentec-project/gomayo/data"
	"github.com/fentec-project/gomayo/sample"
)

// Scheme represents an instance of the MAYO signature scheme for a
// chosen parameter set.
type Scheme struct {
	Params *Params

	rand io.Reader
}

// NewScheme configures a new instance of the scheme drawing its
// randomness from crypto/rand.
func NewScheme(params *Params) *Scheme {
	return NewSchemeWithRand(params, rand.Reader)
}

// NewSchemeWithRand configures a new instance of the scheme drawing
// its randomness from the provided reader. With a deterministic
// reader key generation and signing are fully deterministic, which
// makes known-answer tests possible.
func NewSchemeWithRand(params *Params, r io.Reader) *Scheme {
	return &Scheme{
		Params: params,
		rand:   r,
	}
}

// deriveSeedPkAndO derives the public key seed and the packed matrix
// O from the secret key seed, reading the concatenated prefix of the
// SHAKE256 extendable output.
func (s *Scheme) deriveSeedPkAndO(seedSk []byte) ([]byte, []byte) {
	p := s.Params
	out := sample.Shake256(p.PkSeedBytes+p.OBytes(), seedSk)

	return out[:p.PkSeedBytes], out[p.PkSeedBytes:]
}

// deriveTarget derives the target vector of M field elements from the
// message digest and the salt.
func (s *Scheme) deriveTarget(digest, salt []byte) (data.Vector, error) {
	p := s.Params
	tBytes := sample.Shake256(data.NibbleLen(p.M), digest, salt)

	return data.DecodeNibbles(tBytes, p.M)
}
