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

package mayo_test

import (
	"testing"

	"github.com/fentec-project/gomayo/mayo"
	"github.com/stretchr/testify/assert"
)

func TestFingerprintSecretKey(t *testing.T) {
	p, err := mayo.NewParams("mayo1")
	if err != nil {
		t.Fatalf("error when looking up parameters: %v", err)
	}
	scheme := mayo.NewScheme(p)

	csk1, _, err := scheme.GenerateKeys()
	if err != nil {
		t.Fatalf("error when generating keys: %v", err)
	}
	csk2, _, err := scheme.GenerateKeys()
	if err != nil {
		t.Fatalf("error when generating keys: %v", err)
	}

	fp1 := mayo.FingerprintSecretKey(csk1)
	fp2 := mayo.FingerprintSecretKey(csk1)
	assert.Equal(t, fp1, fp2, "the fingerprint is deterministic")
	assert.Equal(t, 64, len(fp1))

	assert.NotEqual(t, fp1, mayo.FingerprintSecretKey(csk2),
		"different keys should have different fingerprints")
}
