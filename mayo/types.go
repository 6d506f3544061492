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

// CompactSecretKey is the secret key seed. It is the only long-lived
// secret-carrying state; everything else is derived from it on demand.
type CompactSecretKey []byte

// CompactPublicKey is the public key seed followed by the packed
// P3 matrices.
type CompactPublicKey []byte

// ExpandedSecretKey is the deterministic expansion of a compact
// secret key: the seed, the packed matrix O, the packed P1 matrices
// and the packed secret matrices L.
type ExpandedSecretKey []byte

// ExpandedPublicKey is the deterministic expansion of a compact
// public key: the packed P1, P2 and P3 matrices.
type ExpandedPublicKey []byte

// Signature is the packed solution vector s followed by the salt.
type Signature []byte
