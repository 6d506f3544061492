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

func TestNewParams(t *testing.T) {
	p, err := mayo.NewParams("MAYO1")
	if err != nil {
		t.Fatalf("error when looking up parameters: %v", err)
	}
	assert.Equal(t, 66, p.N)
	assert.Equal(t, 64, p.M)
	assert.Equal(t, 8, p.O)
	assert.Equal(t, 9, p.K)
	assert.Equal(t, 58, p.V())

	lower, err := mayo.NewParams("mayo1")
	if err != nil {
		t.Fatalf("error when looking up parameters: %v", err)
	}
	assert.Equal(t, p, lower, "lookup should be case-insensitive")

	_, err = mayo.NewParams("mayo5")
	assert.ErrorIs(t, err, mayo.ErrUnknownVariant)
}

func TestParamsDerivedLengthsMayo1(t *testing.T) {
	p, err := mayo.NewParams("mayo1")
	if err != nil {
		t.Fatalf("error when looking up parameters: %v", err)
	}

	assert.Equal(t, 232, p.OBytes())
	assert.Equal(t, 54784, p.P1Bytes())
	assert.Equal(t, 14848, p.P2Bytes())
	assert.Equal(t, 1152, p.P3Bytes())
	assert.Equal(t, 14848, p.LBytes())

	assert.Equal(t, 16+1152, p.CPKBytes())
	assert.Equal(t, 24+232+54784+14848, p.ESKBytes())
	assert.Equal(t, 54784+14848+1152, p.EPKBytes())
	assert.Equal(t, 33+24, p.SigBytes())
}

func TestParamsDerivedLengthsMayo2(t *testing.T) {
	p, err := mayo.NewParams("mayo2")
	if err != nil {
		t.Fatalf("error when looking up parameters: %v", err)
	}

	assert.Equal(t, 78, p.N)
	assert.Equal(t, 18, p.O)
	assert.Equal(t, 60, p.V())

	assert.Equal(t, 540, p.OBytes())
	assert.Equal(t, 58560, p.P1Bytes())
	assert.Equal(t, 34560, p.P2Bytes())
	assert.Equal(t, 5504, p.P3Bytes())

	assert.Equal(t, 39+24, p.SigBytes())
}
