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
	"golang.org/x/crypto/sha3"
)

// Shake256 absorbs the inputs in order into a SHAKE256 sponge and
// squeezes n bytes of output. There is no domain separation beyond
// the concatenation of the inputs.
func Shake256(n int, inputs ...[]byte) []byte {
	h := sha3.NewShake256()
	for _, in := range inputs {
		h.Write(in)
	}

	out := make([]byte, n)
	h.Read(out)

	return out
}
