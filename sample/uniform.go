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

package sample

import (
	"crypto/rand"
	"io"
)

// Sampler is an interface for random sampling of GF(16) elements.
// A sampled value occupies the low nibble of the returned byte.
type Sampler interface {
	Sample() (byte, error)
}

// Uniform samples GF(16) elements uniformly at random from the
// provided source of entropy.
type Uniform struct {
	rand io.Reader
}

// NewUniform returns an instance of the Uniform sampler reading
// from crypto/rand.
func NewUniform() *Uniform {
	return NewUniformFromReader(rand.Reader)
}

// NewUniformFromReader returns an instance of the Uniform sampler
// reading from the provided entropy source. Passing a deterministic
// reader makes the sampled values reproducible.
func NewUniformFromReader(r io.Reader) *Uniform {
	return &Uniform{rand: r}
}

// Sample samples a uniformly random GF(16) element.
func (u *Uniform) Sample() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(u.rand, b[:]); err != nil {
		return 0, err
	}

	return b[0] & 0x0F, nil
}
