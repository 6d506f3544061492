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
	"github.com/pkg/errors"

	"github.com/fentec-project/gomayo/data"
)

// decodeO decodes the packed secret matrix O of shape V x O.
func (s *Scheme) decodeO(oBytes []byte) (data.Matrix, error) {
	p := s.Params
	if len(oBytes) != p.OBytes() {
		return nil, errors.Errorf("matrix O should be packed into %d bytes, got %d",
			p.OBytes(), len(oBytes))
	}

	return data.DecodeMatrix(oBytes, p.V(), p.O)
}

// decodeP1 decodes the M upper-triangular V x V matrices P1 from
// their packed concatenation. Each matrix occupies an equal chunk.
func (s *Scheme) decodeP1(p1Bytes []byte) ([]data.Matrix, error) {
	p := s.Params
	if len(p1Bytes) != p.P1Bytes() {
		return nil, errors.Errorf("matrices P1 should be packed into %d bytes, got %d",
			p.P1Bytes(), len(p1Bytes))
	}

	v := p.V()
	perMat := v * (v + 1) / 2
	chunk := data.NibbleLen(perMat)

	mats := make([]data.Matrix, p.M)
	for i := 0; i < p.M; i++ {
		elems, err := data.DecodeNibbles(p1Bytes[i*chunk:(i+1)*chunk], perMat)
		if err != nil {
			return nil, err
		}
		mats[i], err = data.DecodeUpperTriangular(elems, v)
		if err != nil {
			return nil, err
		}
	}

	return mats, nil
}

// decodeP2 decodes the M dense V x O matrices P2 from their packed
// concatenation. Each matrix occupies an equal chunk.
func (s *Scheme) decodeP2(p2Bytes []byte) ([]data.Matrix, error) {
	p := s.Params
	if len(p2Bytes) != p.P2Bytes() {
		return nil, errors.Errorf("matrices P2 should be packed into %d bytes, got %d",
			p.P2Bytes(), len(p2Bytes))
	}

	chunk := data.NibbleLen(p.V() * p.O)

	mats := make([]data.Matrix, p.M)
	for i := 0; i < p.M; i++ {
		var err error
		mats[i], err = data.DecodeMatrix(p2Bytes[i*chunk:(i+1)*chunk], p.V(), p.O)
		if err != nil {
			return nil, err
		}
	}

	return mats, nil
}

// decodeP3 decodes the M upper-triangular O x O matrices P3 from
// their packed concatenation. Each matrix occupies an equal chunk.
func (s *Scheme) decodeP3(p3Bytes []byte) ([]data.Matrix, error) {
	p := s.Params
	if len(p3Bytes) != p.P3Bytes() {
		return nil, errors.Errorf("matrices P3 should be packed into %d bytes, got %d",
			p.P3Bytes(), len(p3Bytes))
	}

	perMat := p.O * (p.O + 1) / 2
	chunk := data.NibbleLen(perMat)

	mats := make([]data.Matrix, p.M)
	for i := 0; i < p.M; i++ {
		elems, err := data.DecodeNibbles(p3Bytes[i*chunk:(i+1)*chunk], perMat)
		if err != nil {
			return nil, err
		}
		mats[i], err = data.DecodeUpperTriangular(elems, p.O)
		if err != nil {
			return nil, err
		}
	}

	return mats, nil
}

// decodeL decodes the M dense V x O secret matrices L. Unlike P1 and
// P2 the matrices are packed as one flat element sequence.
func (s *Scheme) decodeL(lBytes []byte) ([]data.Matrix, error) {
	p := s.Params
	if len(lBytes) != p.LBytes() {
		return nil, errors.Errorf("matrices L should be packed into %d bytes, got %d",
			p.LBytes(), len(lBytes))
	}

	v := p.V()
	perMat := v * p.O
	elems, err := data.DecodeNibbles(lBytes, p.M*perMat)
	if err != nil {
		return nil, err
	}

	mats := make([]data.Matrix, p.M)
	for i := 0; i < p.M; i++ {
		part := elems[i*perMat : (i+1)*perMat]
		rows := make([]data.Vector, v)
		for r := 0; r < v; r++ {
			rows[r] = part[r*p.O : (r+1)*p.O]
		}
		mats[i], err = data.NewMatrix(rows)
		if err != nil {
			return nil, err
		}
	}

	return mats, nil
}
