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
	"bytes"
	"io"

	"github.com/pkg/errors"

	"github.com/fentec-project/gomayo/data"
	gomayo "github.com/fentec-project/gomayo/internal"
	"github.com/fentec-project/gomayo/sample"
)

// MaxSignRetries bounds the number of salt and vinegar draws a single
// signing operation may attempt before giving up.
const MaxSignRetries = 256

// ErrSignExhausted is returned when no attempt produced a consistent
// linear system within MaxSignRetries.
var ErrSignExhausted = errors.New("signing failed after maximum retries")

// Sign signs a message with a compact secret key. The key is expanded
// internally; use SignExpanded to amortize the expansion over many
// signatures.
func (s *Scheme) Sign(csk CompactSecretKey, message []byte) (Signature, error) {
	esk, err := s.ExpandSecretKey(csk)
	if err != nil {
		return nil, err
	}

	return s.SignExpanded(esk, message)
}

// SignExpanded signs a message with an expanded secret key.
//
// Each attempt samples a fresh salt and fresh vinegar variables,
// derives the target vector from the message digest and the salt,
// and linearizes the oil coordinates into a system of M equations in
// O unknowns. An inconsistent system burns the attempt; a solved one
// yields the signature s = vinegar || oil followed by the salt.
func (s *Scheme) SignExpanded(esk ExpandedSecretKey, message []byte) (Signature, error) {
	p := s.Params
	if len(esk) != p.ESKBytes() {
		return nil, gomayo.MalformedSecKey
	}

	seedSk := esk[:p.SkSeedBytes]
	oBytes := esk[p.SkSeedBytes : p.SkSeedBytes+p.OBytes()]
	p1Start := p.SkSeedBytes + p.OBytes()
	p1Bytes := esk[p1Start : p1Start+p.P1Bytes()]
	lBytes := esk[p1Start+p.P1Bytes():]

	// the stored key must agree with its own seed
	_, derivedO := s.deriveSeedPkAndO(seedSk)
	if !bytes.Equal(derivedO, oBytes) {
		return nil, gomayo.MalformedSecKey
	}

	p1Mats, err := s.decodeP1(p1Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "error in signing")
	}
	lMats, err := s.decodeL(lBytes)
	if err != nil {
		return nil, errors.Wrap(err, "error in signing")
	}

	// the symmetrized vinegar blocks do not change across attempts
	p1Sym := make([]data.Matrix, p.M)
	for i := range p1Mats {
		p1Sym[i], err = p1Mats[i].Symmetrize()
		if err != nil {
			return nil, errors.Wrap(err, "error in signing")
		}
	}

	digest := sample.Shake256(p.DigestBytes, message)
	v := p.V()

	for attempt := 0; attempt < MaxSignRetries; attempt++ {
		salt := make([]byte, p.SaltBytes)
		if _, err := io.ReadFull(s.rand, salt); err != nil {
			return nil, errors.Wrap(err, "error in signing")
		}

		t, err := s.deriveTarget(digest, salt)
		if err != nil {
			return nil, errors.Wrap(err, "error in signing")
		}

		vinegarBytes := make([]byte, data.NibbleLen(v))
		if _, err := io.ReadFull(s.rand, vinegarBytes); err != nil {
			return nil, errors.Wrap(err, "error in signing")
		}
		sV, err := data.DecodeNibbles(vinegarBytes, v)
		if err != nil {
			return nil, errors.Wrap(err, "error in signing")
		}

		yPrime := make(data.Vector, p.M)
		rows := make([]data.Vector, p.M)
		for i := 0; i < p.M; i++ {
			yPrime[i], err = p1Sym[i].MulXMatY(sV, sV)
			if err != nil {
				return nil, errors.Wrap(err, "error in signing")
			}
			rows[i], err = lMats[i].MulVecLeft(sV)
			if err != nil {
				return nil, errors.Wrap(err, "error in signing")
			}
		}
		aMat, err := data.NewMatrix(rows)
		if err != nil {
			return nil, errors.Wrap(err, "error in signing")
		}

		x, err := data.GaussJordanSolver(aMat, t.Sub(yPrime))
		if err != nil {
			// an inconsistent system just burns the attempt; so does
			// any internal solver failure
			continue
		}

		sVec := make(data.Vector, 0, p.N)
		sVec = append(sVec, sV...)
		sVec = append(sVec, x...)

		sig := make([]byte, 0, p.SigBytes())
		sig = append(sig, data.EncodeNibbles(sVec)...)
		sig = append(sig, salt...)

		return Signature(sig), nil
	}

	return nil, ErrSignExhausted
}
