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
	"io"

	"github.com/pkg/errors"

	"github.com/fentec-project/gomayo/data"
	gomayo "github.com/fentec-project/gomayo/internal"
	"github.com/fentec-project/gomayo/sample"
)

// GenerateKeys generates a compact key pair. The secret key is a
// fresh random seed; the public key is the derived public seed
// followed by the packed P3 matrices.
func (s *Scheme) GenerateKeys() (CompactSecretKey, CompactPublicKey, error) {
	p := s.Params

	seedSk := make([]byte, p.SkSeedBytes)
	if _, err := io.ReadFull(s.rand, seedSk); err != nil {
		return nil, nil, errors.Wrap(err, "error in key generation")
	}

	seedPk, _ := s.deriveSeedPkAndO(seedSk)
	p3Bytes := sample.Shake256(p.P3Bytes(), seedPk)

	cpk := make([]byte, 0, p.CPKBytes())
	cpk = append(cpk, seedPk...)
	cpk = append(cpk, p3Bytes...)

	return CompactSecretKey(seedSk), CompactPublicKey(cpk), nil
}

// ExpandSecretKey deterministically expands a compact secret key into
// the seed, the packed matrix O, the packed P1 matrices and the
// packed secret matrices L, where L_i = (P1_i + P1_i^T) * O + P2_i.
func (s *Scheme) ExpandSecretKey(csk CompactSecretKey) (ExpandedSecretKey, error) {
	p := s.Params
	if len(csk) != p.SkSeedBytes {
		return nil, gomayo.MalformedSecKey
	}

	seedPk, oBytes := s.deriveSeedPkAndO(csk)
	oMat, err := s.decodeO(oBytes)
	if err != nil {
		return nil, errors.Wrap(err, "error in secret key expansion")
	}

	p1Bytes, err := sample.AESCTRStream(seedPk, p.P1Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "error in secret key expansion")
	}
	p2Bytes, err := sample.AESCTRStream(seedPk, p.P2Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "error in secret key expansion")
	}

	p1Mats, err := s.decodeP1(p1Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "error in secret key expansion")
	}
	p2Mats, err := s.decodeP2(p2Bytes)
	if err != nil {
		return nil, errors.Wrap(err, "error in secret key expansion")
	}

	lElems := make(data.Vector, 0, p.M*p.V()*p.O)
	for i := 0; i < p.M; i++ {
		sym, err := p1Mats[i].Symmetrize()
		if err != nil {
			return nil, errors.Wrap(err, "error in secret key expansion")
		}
		prod, err := sym.Mul(oMat)
		if err != nil {
			return nil, errors.Wrap(err, "error in secret key expansion")
		}
		lMat, err := prod.Add(p2Mats[i])
		if err != nil {
			return nil, errors.Wrap(err, "error in secret key expansion")
		}
		for _, row := range lMat {
			lElems = append(lElems, row...)
		}
	}
	lBytes := data.EncodeNibbles(lElems)

	esk := make([]byte, 0, p.ESKBytes())
	esk = append(esk, csk...)
	esk = append(esk, oBytes...)
	esk = append(esk, p1Bytes...)
	esk = append(esk, lBytes...)

	return ExpandedSecretKey(esk), nil
}

// ExpandPublicKey deterministically expands a compact public key into
// the packed P1, P2 and P3 matrices.
func (s *Scheme) ExpandPublicKey(cpk CompactPublicKey) (ExpandedPublicKey, error) {
	p := s.Params
	if len(cpk) != p.CPKBytes() {
		return nil, gomayo.MalformedPubKey
	}

	seedPk := cpk[:p.PkSeedBytes]
	p3Bytes := cpk[p.PkSeedBytes:]

	p1Bytes, err := sample.AESCTRStream(seedPk, p.P1Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "error in public key expansion")
	}
	p2Bytes, err := sample.AESCTRStream(seedPk, p.P2Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "error in public key expansion")
	}

	epk := make([]byte, 0, p.EPKBytes())
	epk = append(epk, p1Bytes...)
	epk = append(epk, p2Bytes...)
	epk = append(epk, p3Bytes...)

	return ExpandedPublicKey(epk), nil
}
