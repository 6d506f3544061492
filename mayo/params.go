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

package mayo

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/fentec-project/gomayo/data"
)

// ErrUnknownVariant is returned by NewParams for an unrecognized
// parameter set name.
var ErrUnknownVariant = errors.New("unknown parameter set")

// Params holds the parameters of a MAYO variant.
//
// The public map consists of M quadratic polynomials in N variables
// over GF(16). O is the width of the oil block; the remaining
// V = N - O coordinates are the vinegar variables. All derived byte
// lengths are computed from these dimensions.
type Params struct {
	Name string

	N int // number of variables
	M int // number of equations
	O int // width of the oil block
	K int // whipping factor, reserved

	SkSeedBytes int
	PkSeedBytes int
	SaltBytes   int
	DigestBytes int
}

// NewParams returns the parameters of the named MAYO variant.
// The name is matched case-insensitively; currently "MAYO1" and
// "MAYO2" are supported.
func NewParams(name string) (*Params, error) {
	switch strings.ToLower(name) {
	case "mayo1":
		return &Params{
			Name: "MAYO1",
			N:    66, M: 64, O: 8, K: 9,
			SkSeedBytes: 24,
			PkSeedBytes: 16,
			SaltBytes:   24,
			DigestBytes: 32,
		}, nil
	case "mayo2":
		return &Params{
			Name: "MAYO2",
			N:    78, M: 64, O: 18, K: 4,
			SkSeedBytes: 24,
			PkSeedBytes: 16,
			SaltBytes:   24,
			DigestBytes: 32,
		}, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// V returns the number of vinegar variables, N - O.
func (p *Params) V() int {
	return p.N - p.O
}

// OBytes returns the packed length of the V x O matrix O.
func (p *Params) OBytes() int {
	return data.NibbleLen(p.V() * p.O)
}

// P1Bytes returns the packed length of the M upper-triangular
// V x V matrices P1. Each matrix is packed separately.
func (p *Params) P1Bytes() int {
	return p.M * data.NibbleLen(p.V()*(p.V()+1)/2)
}

// P2Bytes returns the packed length of the M dense V x O matrices P2.
// Each matrix is packed separately.
func (p *Params) P2Bytes() int {
	return p.M * data.NibbleLen(p.V()*p.O)
}

// P3Bytes returns the packed length of the M upper-triangular
// O x O matrices P3. Each matrix is packed separately.
func (p *Params) P3Bytes() int {
	return p.M * data.NibbleLen(p.O*(p.O+1)/2)
}

// LBytes returns the packed length of the secret matrices L,
// the flat concatenation of M dense V x O matrices.
func (p *Params) LBytes() int {
	return data.NibbleLen(p.M * p.V() * p.O)
}

// CPKBytes returns the length of a compact public key.
func (p *Params) CPKBytes() int {
	return p.PkSeedBytes + p.P3Bytes()
}

// ESKBytes returns the length of an expanded secret key.
func (p *Params) ESKBytes() int {
	return p.SkSeedBytes + p.OBytes() + p.P1Bytes() + p.LBytes()
}

// EPKBytes returns the length of an expanded public key.
func (p *Params) EPKBytes() int {
	return p.P1Bytes() + p.P2Bytes() + p.P3Bytes()
}

// SigBytes returns the length of a signature: the packed solution
// vector of N elements followed by the salt.
func (p *Params) SigBytes() int {
	return data.NibbleLen(p.N) + p.SaltBytes
}
