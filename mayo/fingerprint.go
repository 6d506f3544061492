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
	"golang.org/x/crypto/blake2b"
)

// FingerprintSecretKey returns the Blake2b-512 digest of a compact
// secret key. The fingerprint identifies a key without revealing it
// and is safe to store or compare in the clear.
func FingerprintSecretKey(csk CompactSecretKey) [blake2b.Size]byte {
	return blake2b.Sum512(csk)
}
