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

package data

import (
	"fmt"

	"github.com/fentec-project/gomayo/gf16"
	"github.com/fentec-project/gomayo/sample"
)

// Vector wraps a slice of GF(16) elements. Each element occupies
// the low nibble of its byte.
type Vector []byte

// NewVector returns a new Vector instance.
func NewVector(coordinates []byte) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance
// with random elements sampled by the provided sample.Sampler.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler) (Vector, error) {
	vec := make([]byte, len)
	var err error

	for i := 0; i < len; i++ {
		vec[i], err = sampler.Sample()
		if err != nil {
			return nil, err
		}
	}

	return NewVector(vec), nil
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Add adds vectors v and other.
// The result is returned in a new Vector.
func (v Vector) Add(other Vector) Vector {
	sum := make([]byte, len(v))

	for i, c := range v {
		sum[i] = gf16.Add(c, other[i])
	}

	return NewVector(sum)
}

// Sub subtracts vectors v and other.
// The result is returned in a new Vector.
// Subtraction coincides with addition in characteristic 2.
func (v Vector) Sub(other Vector) Vector {
	sub := make([]byte, len(v))
	for i, c := range v {
		sub[i] = gf16.Sub(c, other[i])
	}

	return sub
}

// Dot calculates the dot product (inner product) of vectors v and other.
// It returns an error if vectors have different numbers of elements.
func (v Vector) Dot(other Vector) (byte, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("vectors should be of same length")
	}

	var prod byte
	for i, c := range v {
		prod = gf16.Add(prod, gf16.Mul(c, other[i]))
	}

	return prod, nil
}
