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
package montgomery

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrEvenModulus is reported for moduli which have no inverse modulo R.
var ErrEvenModulus = errors.New("modulus must be odd")

// ErrModulusTooLarge is reported for moduli without a bit of slack.
var ErrModulusTooLarge = errors.New("modulus too large")

// Element of a prime order field, represented in Montgomery form to speed up
// multiplications.
type Element [1]uint32 // defined as an array to prevent mistaken use of arithmetic operators, or naive assignments.

// A Field of prime order, less than 2³¹.  Unlike modq, the modulus here is a
// runtime value, hence elements from different fields are not distinguished
// by type.  Field is immutable once constructed.
type Field struct {
	modulus           uint32
	negModulusInvModR uint32
	rSq               uint32
}

// NewField of the given order.
func NewField(modulus uint32) (Field, error) {
	if modulus >= 1<<31 {
		// need at least one bit of "slack"
		return Field{}, fmt.Errorf("%w: %d", ErrModulusTooLarge, modulus)
	} else if modulus%2 == 0 || modulus < 3 {
		return Field{}, fmt.Errorf("%w: %d", ErrEvenModulus, modulus)
	}
	// Newton iteration for modulus⁻¹ (mod 2³²).  Every odd m is its own
	// inverse modulo 8, and each step doubles the number of correct bits.
	inv := modulus
	for range 4 {
		inv *= 2 - modulus*inv
	}
	// R mod m, then R² mod m.
	r := (uint64(1) << 32) % uint64(modulus)
	rSq := uint32(r * r % uint64(modulus))
	//
	return Field{modulus, -inv, rSq}, nil
}

// Modulus returns the order of this field.
func (f Field) Modulus() uint32 {
	return f.modulus
}

// Add x0 + x1 + xRest[0] + xRest[1] + ...
func (f Field) Add(x0, x1 Element, xRest ...Element) Element {
	res := Element{x0[0] + x1[0]}
	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	for _, e := range xRest {
		res[0] += e[0]
		if res[0] >= f.modulus {
			res[0] -= f.modulus
		}
	}

	return res
}

// Sub x0 - x1 - xRest[0] - xRest[1] - ...
func (f Field) Sub(x0, x1 Element, xRest ...Element) Element {
	const negMask uint32 = 1 << 31

	res := Element{x0[0] - x1[0]}
	if res[0]&negMask != 0 {
		res[0] += f.modulus
	}

	for _, e := range xRest {
		res[0] -= e[0]
		if res[0]&negMask != 0 {
			res[0] += f.modulus
		}
	}

	return res
}

// Neg -x
func (f Field) Neg(x Element) Element {
	return f.Sub(Element{}, x)
}

// Double 2x
func (f Field) Double(x Element) Element {
	return f.Add(x, x)
}

// Half x/2
func (f Field) Half(x Element) Element {
	if x[0]&1 == 0 {
		return Element{x[0] >> 1}
	}
	// x + m is even, and less than 2³²
	return Element{(x[0] + f.modulus) >> 1}
}

// montgomeryReduce x -> x.R⁻¹ (mod m), for x < m.R
func (f Field) montgomeryReduce(x uint64) Element {
	// textbook Montgomery reduction
	const R = 1 << 32
	m := (x * uint64(f.negModulusInvModR)) % R // m = x * (-modulus⁻¹) (mod R)

	res := Element{uint32((x + m*uint64(f.modulus)) / R)}

	if res[0] >= f.modulus {
		res[0] -= f.modulus
	}

	return res
}

// ToUint32 returns the numerical (non-Montgomery)
// value of x.
func (f Field) ToUint32(x Element) uint32 {
	return f.montgomeryReduce(uint64(x[0]))[0]
}

func (f Field) mul(a, b Element) Element {
	return f.montgomeryReduce(uint64(a[0]) * uint64(b[0]))
}

// Mul x0 * x1 * xRest[0] * xRest[1] * ...
func (f Field) Mul(x0, x1 Element, xRest ...Element) Element {
	res := f.mul(x0, x1)
	for _, e := range xRest {
		res = f.mul(res, e)
	}

	return res
}

// Inverse x⁻¹, or 0 if x = 0.
func (f Field) Inverse(x Element) Element {
	if x[0] == 0 {
		return x
	}

	res := f.One()

	for n := f.modulus - 2; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = f.mul(res, x)
		}

		x = f.mul(x, x)
	}

	return res
}

// NewElement returns an element of the field f corresponding to the natural number x.
func (f Field) NewElement(x uint32) Element {
	return Element{uint32(uint64(x) << 32 % uint64(f.modulus))}
}

// FromUint64 returns an element of the field f corresponding to the natural
// number x, which can exceed 2³².
func (f Field) FromUint64(x uint64) Element {
	// x mod m < 2³¹, then multiply by R² and reduce to get x.R
	return f.mul(Element{uint32(x % uint64(f.modulus))}, Element{f.rSq})
}

// One returns the Montgomery form of 1.
func (f Field) One() Element {
	return f.montgomeryReduce(uint64(f.rSq))
}

// Cmp compares the numerical values of x0 and x1.
func (f Field) Cmp(x0, x1 Element) int {
	return cmp.Compare(f.ToUint32(x0), f.ToUint32(x1))
}
