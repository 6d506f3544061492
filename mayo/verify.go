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

	"github.com/pkg/errors"

	"github.com/fentec-project/gomayo/data"
	"github.com/fentec-project/gomayo/gf16"
	gomayo "github.com/fentec-project/gomayo/internal"
	"github.com/fentec-project/gomayo/sample"
)

// Verify checks a signature on a message against an expanded public
// key. It re-evaluates the public quadratic map on the signature's
// solution vector and compares the result to the target derived from
// the message digest and the signature's salt.
//
// A false result with a nil error means the signature does not match;
// an error is returned only for malformed inputs.
func (s *Scheme) Verify(epk ExpandedPublicKey, message []byte, sig Signature) (bool, error) {
	p := s.Params
	if len(epk) != p.EPKBytes() {
		return false, gomayo.MalformedPubKey
	}
	if len(sig) != p.SigBytes() {
		return false, gomayo.MalformedSig
	}

	p1Mats, err := s.decodeP1(epk[:p.P1Bytes()])
	if err != nil {
		return false, errors.Wrap(err, "error in verification")
	}
	p2Mats, err := s.decodeP2(epk[p.P1Bytes() : p.P1Bytes()+p.P2Bytes()])
	if err != nil {
		return false, errors.Wrap(err, "error in verification")
	}
	p3Mats, err := s.decodeP3(epk[p.P1Bytes()+p.P2Bytes():])
	if err != nil {
		return false, errors.Wrap(err, "error in verification")
	}

	sBytes := sig[:data.NibbleLen(p.N)]
	salt := sig[data.NibbleLen(p.N):]

	sVec, err := data.DecodeNibbles(sBytes, p.N)
	if err != nil {
		return false, errors.Wrap(err, "error in verification")
	}
	sV := sVec[:p.V()]
	sO := sVec[p.V():]

	digest := sample.Shake256(p.DigestBytes, message)
	t, err := s.deriveTarget(digest, salt)
	if err != nil {
		return false, errors.Wrap(err, "error in verification")
	}

	y := make(data.Vector, p.M)
	for i := 0; i < p.M; i++ {
		p1Sym, err := p1Mats[i].Symmetrize()
		if err != nil {
			return false, errors.Wrap(err, "error in verification")
		}
		term1, err := p1Sym.MulXMatY(sV, sV)
		if err != nil {
			return false, errors.Wrap(err, "error in verification")
		}

		term2, err := p2Mats[i].MulXMatY(sV, sO)
		if err != nil {
			return false, errors.Wrap(err, "error in verification")
		}

		p3Sym, err := p3Mats[i].Symmetrize()
		if err != nil {
			return false, errors.Wrap(err, "error in verification")
		}
		term3, err := p3Sym.MulXMatY(sO, sO)
		if err != nil {
			return false, errors.Wrap(err, "error in verification")
		}

		y[i] = gf16.Add(gf16.Add(term1, term2), term3)
	}

	return bytes.Equal(y, t), nil
}

// Open verifies a signed message of the form signature || message
// against a compact public key. The public key is expanded
// internally. On a valid signature the embedded message is returned;
// on a mismatching signature the returned message is nil with a nil
// error.
func (s *Scheme) Open(cpk CompactPublicKey, signedMessage []byte) ([]byte, error) {
	p := s.Params
	if len(signedMessage) < p.SigBytes() {
		return nil, gomayo.MalformedInput
	}

	sig := Signature(signedMessage[:p.SigBytes()])
	message := signedMessage[p.SigBytes():]

	epk, err := s.ExpandPublicKey(cpk)
	if err != nil {
		return nil, err
	}

	ok, err := s.Verify(epk, message, sig)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return message, nil
}
