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

package data_test

import (
	"testing"

	"github.com/fentec-project/gomayo/data"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestEncodeNibbles(t *testing.T) {
	enc := data.EncodeNibbles(data.Vector{0x1, 0x2, 0x3, 0x4})
	assert.Equal(t, []byte{0x12, 0x34}, enc)

	enc = data.EncodeNibbles(data.Vector{0xA, 0xB, 0xC})
	assert.Equal(t, []byte{0xAB, 0xC0}, enc, "odd length should pad the low nibble with zero")
}

func TestDecodeNibbles(t *testing.T) {
	dec, err := data.DecodeNibbles([]byte{0xAB, 0xC0}, 3)
	if err != nil {
		t.Fatalf("error when decoding: %v", err)
	}
	assert.Equal(t, data.Vector{0xA, 0xB, 0xC}, dec)

	_, err = data.DecodeNibbles([]byte{0xAB}, 3)
	assert.Error(t, err, "decoding from too few bytes should fail")
}

func TestNibbleRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("decode inverts encode", prop.ForAll(
		func(raw []uint8) bool {
			v := make(data.Vector, len(raw))
			for i, e := range raw {
				v[i] = e & 0x0F
			}
			dec, err := data.DecodeNibbles(data.EncodeNibbles(v), len(v))
			if err != nil {
				return false
			}
			if len(dec) != len(v) {
				return false
			}
			for i := range v {
				if dec[i] != v[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestDecodeMatrix(t *testing.T) {
	// 2x3 matrix [[1,2,3],[4,5,6]] packed row-major
	mat, err := data.DecodeMatrix([]byte{0x12, 0x34, 0x56}, 2, 3)
	if err != nil {
		t.Fatalf("error when decoding matrix: %v", err)
	}
	assert.Equal(t, data.Matrix{
		{0x1, 0x2, 0x3},
		{0x4, 0x5, 0x6},
	}, mat)

	_, err = data.DecodeMatrix([]byte{0x12}, 2, 3)
	assert.Error(t, err)
}

func TestDecodeUpperTriangular(t *testing.T) {
	mat, err := data.DecodeUpperTriangular(data.Vector{1, 2, 3, 4, 5, 6}, 3)
	if err != nil {
		t.Fatalf("error when decoding upper-triangular matrix: %v", err)
	}
	assert.Equal(t, data.Matrix{
		{1, 2, 3},
		{0, 4, 5},
		{0, 0, 6},
	}, mat)

	_, err = data.DecodeUpperTriangular(data.Vector{1, 2, 3}, 3)
	assert.Error(t, err, "wrong number of packed elements should fail")
}
