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
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
)

// AESCTRStream expands a 16-byte key into n pseudo-random bytes with
// AES-128 in counter mode. The IV is all zeros and the counter is
// big-endian, starting at zero; every call produces bytes from the
// beginning of the keystream.
func AESCTRStream(key []byte, n int) ([]byte, error) {
	if len(key) != 16 {
		return nil, errors.Errorf("AES-128 key must be 16 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "error creating AES cipher")
	}

	iv := make([]byte, aes.BlockSize)
	out := make([]byte, n)
	cipher.NewCTR(block, iv).XORKeyStream(out, out)

	return out, nil
}
