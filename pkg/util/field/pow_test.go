// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"math/big"
	"testing"

	gnark "github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/go-latfield/pkg/util/field/dilithium"
	"github.com/consensys/go-latfield/pkg/util/field/koalabear"
	"github.com/consensys/go-latfield/pkg/util/field/kyber"
)

const POW_BASE_MAX uint = 65536
const POW_BASE_INC uint = 8

func Test_Pow_00(t *testing.T) {
	PowCheck(t, 1, 1)
}
func Test_Pow_01(t *testing.T) {
	PowCheck(t, 2, 1)
}
func Test_Pow_02(t *testing.T) {
	PowCheck(t, 2, 2)
}
func Test_Pow_03(t *testing.T) {
	PowCheck(t, 2, 3)
}
func Test_Pow_04(t *testing.T) {
	PowCheck(t, 2, 31)
}
func Test_Pow_05(t *testing.T) {
	PowCheck(t, 3, 0)
}
func Test_Pow_06(t *testing.T) {
	PowCheck(t, 7680, 2)
}
func Test_Pow_07(t *testing.T) {
	PowCheck(t, 8380416, 3)
}

func Test_Pow_10(t *testing.T) {
	PowCheckLoop(t, 0)
}

func Test_Pow_11(t *testing.T) {
	PowCheckLoop(t, 3)
}

func Test_Pow_12(t *testing.T) {
	PowCheckLoop(t, 7)
}

// Fermat's little theorem: x^(q-1) = 1 for all non-zero x.
func Test_Pow_Fermat(t *testing.T) {
	for base := uint64(1); base < 7681; base++ {
		if !Pow(kyber.New(base), kyber.Q-1).IsOne() {
			t.Errorf("%d^(q-1) != 1", base)
		}
	}
}

func Test_TwoPowN(t *testing.T) {
	// q = 2²³ - 2¹³ + 1, hence 2²³ + 1 = 2¹³
	if !TwoPowN[dilithium.Element](23).Add(dilithium.One()).Equals(TwoPowN[dilithium.Element](13)) {
		t.Errorf("2^23 + 1 != 2^13")
	}
}

func PowCheckLoop(t *testing.T, first uint) {
	for i := first; i < POW_BASE_MAX; i += POW_BASE_INC {
		for j := uint64(0); j < 32; j++ {
			PowCheck(t, i, j)
		}
	}
}

// Check pow computed correctly.  This is done by comparing against math/big for
// the lattice fields, and against the existing gnark function for KoalaBear.
func PowCheck(t *testing.T, base uint, pow uint64) {
	var (
		k        = new(big.Int).SetUint64(pow)
		b        = new(big.Int).SetUint64(uint64(base))
		kyberExp = new(big.Int).Exp(b, k, big.NewInt(kyber.Q))
		dilExp   = new(big.Int).Exp(b, k, big.NewInt(dilithium.Q))
		expected = gnark.NewElement(uint64(base))
	)
	//
	if actual := Pow(kyber.New(uint64(base)), pow); actual.Uint64() != kyberExp.Uint64() {
		t.Errorf("Pow(%d,%d)=%s (not %s) in Kyber", base, pow, actual.String(), kyberExp.String())
	}
	//
	if actual := Pow(dilithium.New(uint64(base)), pow); actual.Uint64() != dilExp.Uint64() {
		t.Errorf("Pow(%d,%d)=%s (not %s) in Dilithium", base, pow, actual.String(), dilExp.String())
	}
	// Compute expected using existing gnark function
	expected.Exp(expected, k)
	//
	if actual := Pow(koalabear.New(uint64(base)), pow); actual.Uint64() != expected.Uint64() {
		t.Errorf("Pow(%d,%d)=%s (not %s) in KoalaBear", base, pow, actual.String(), expected.String())
	}
}
