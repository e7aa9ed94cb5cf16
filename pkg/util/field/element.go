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
	"fmt"
	"math/big"
)

// An Element of a prime-order field.  Elements are values: every operation
// returns a fresh element and leaves its operands untouched.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Equals checks whether two elements represent the same residue.
	Equals(y Operand) bool
	// Hash returns a hash of this element, suitable for use as a map key.
	Hash() uint64
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Return the modulus for the field in question.
	Modulus() *big.Int
	// Compute x * y
	Mul(y Operand) Operand
	// Compute -x
	Neg() Operand
	// Compute x⁻¹, or 0 if x = 0.
	Inverse() Operand
	// Compute x - y
	Sub(y Operand) Operand
	// Text returns the numerical value of x in the given base.
	Text(base int) string
	// SetBytes returns the element represented by a big-endian byte sequence.
	SetBytes(bytes []byte) Operand
	// Bytes returns the big-endian encoding of the canonical value.
	Bytes() []byte
	// SetUint64 returns the element representing the given integer.
	SetUint64(val uint64) Operand
	// Uint64 returns the canonical value.
	Uint64() uint64
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// BigInt construct a field element from a given big.Int.  Negative values are
// reduced into the field, such that BigInt(-1) = -1.
func BigInt[F Element[F]](val big.Int) F {
	var element F
	//
	element = element.SetBytes(val.Bytes())
	// Handle negative values
	if val.Sign() < 0 {
		return element.Neg()
	}
	//
	return element
}

// Uint64 construct a field element from a given uint64
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Minus construct the field element representing -val.
func Minus[F Element[F]](val uint64) F {
	return Uint64[F](val).Neg()
}

// FromBigEndianBytes constructs an element from an array of bytes given in big
// endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}

// TwoPowN constructs a field element representing 2^n
func TwoPowN[F Element[F]](n uint) F {
	var two F
	//
	return Pow(two.SetUint64(2), uint64(n))
}
