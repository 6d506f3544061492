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
	"github.com/fentec-project/gomayo/sample"
	"github.com/stretchr/testify/assert"
)

func TestVector_Add(t *testing.T) {
	v := data.NewVector([]byte{0x1, 0x2, 0xF})
	w := data.NewVector([]byte{0x3, 0x2, 0x1})

	sum := v.Add(w)
	assert.Equal(t, data.Vector{0x2, 0x0, 0xE}, sum)
	assert.Equal(t, v, sum.Sub(w), "subtraction should undo addition")
	assert.Equal(t, v, sum.Add(w), "addition is an involution in characteristic 2")
}

func TestVector_Dot(t *testing.T) {
	v := data.NewVector([]byte{0x2, 0x5})
	w := data.NewVector([]byte{0x9, 0x7})

	// 0x2*0x9 + 0x5*0x7 = 0x1 + 0x8
	prod, err := v.Dot(w)
	if err != nil {
		t.Fatalf("error when computing dot product: %v", err)
	}
	assert.Equal(t, byte(0x9), prod)

	_, err = v.Dot(data.NewVector([]byte{0x1}))
	assert.Error(t, err, "dot product of vectors of different lengths should fail")
}

func TestVector_Random(t *testing.T) {
	sampler := sample.NewUniform()

	v, err := data.NewRandomVector(20, sampler)
	if err != nil {
		t.Fatalf("error when generating random vector: %v", err)
	}
	assert.Equal(t, 20, len(v))
	for _, e := range v {
		assert.True(t, e < 16, "all elements should be nibbles")
	}

	w := v.Copy()
	w[0] ^= 0x1
	assert.NotEqual(t, v[0], w[0], "copy should not share storage")
}
