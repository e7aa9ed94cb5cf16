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
package modq

import (
	"errors"
	"fmt"
	"math/big"
)

// MaxModulus is the exclusive upper bound on supported moduli.  Elements are
// stored in 32 bits, hence requiring one bit of slack means that the sum of
// two canonical residues is always less than 2³² and can be computed without
// widening.
const MaxModulus uint64 = 1 << 31

// ErrModulusTooSmall is reported for moduli which cannot define a field.
var ErrModulusTooSmall = errors.New("modulus too small")

// ErrModulusTooLarge is reported for moduli which violate the width-safety
// bound (see MaxModulus).
var ErrModulusTooLarge = errors.New("modulus too large")

// ErrModulusNotPrime is reported for composite moduli.
var ErrModulusNotPrime = errors.New("modulus not prime")

// Modulus identifies the prime defining a given field.  Implementations are
// expected to be zero-sized marker types, such that every field gets its own
// distinct element type.  The value returned must be constant.  A marker
// should be passed to MustValidate when its package is initialised, since
// arithmetic only enforces the width-safety bound (panicking on violation)
// and never checks primality.
type Modulus interface {
	Modulus() uint32
}

// Validate checks that the modulus identified by M is usable, meaning it is a
// prime which respects the width-safety bound.
func Validate[M Modulus]() error {
	var m M
	//
	return Check(m.Modulus())
}

// MustValidate is like Validate, but panics if the modulus is unusable.  This
// is intended to be called when a field instance is initialised, such that a
// misconfigured modulus is rejected before any arithmetic takes place.
func MustValidate[M Modulus]() {
	if err := Validate[M](); err != nil {
		panic(err)
	}
}

// Check that a given raw modulus is usable.
func Check(q uint32) error {
	switch {
	case q < 2:
		return fmt.Errorf("%w: %d", ErrModulusTooSmall, q)
	case uint64(q) >= MaxModulus:
		return fmt.Errorf("%w: %d (must be less than 2³¹)", ErrModulusTooLarge, q)
	case !big.NewInt(int64(q)).ProbablyPrime(20):
		return fmt.Errorf("%w: %d", ErrModulusNotPrime, q)
	}
	//
	return nil
}

// modulus returns the raw modulus identified by M, panicking if it violates
// the width-safety bound.
func modulus[M Modulus]() uint32 {
	var m M
	//
	q := m.Modulus()
	//
	if q < 2 {
		panic(fmt.Errorf("%w: %d", ErrModulusTooSmall, q))
	} else if uint64(q) >= MaxModulus {
		panic(fmt.Errorf("%w: %d (must be less than 2³¹)", ErrModulusTooLarge, q))
	}
	//
	return q
}
