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
	"cmp"
	"math/big"
	"strconv"
)

// Element of the prime field identified by M.  This is defined as an array of
// one element to prevent accidental use of native arithmetic operators (+,*),
// or naive construction from an unreduced integer.  The value stored is always
// the canonical representative, i.e. it lies in [0,M).  Elements are
// immutable values, hence can be shared freely between goroutines.
type Element[M Modulus] [1]uint32

// New constructs the element representing x mod M.  This is total over all
// uint64 values.
func New[M Modulus](x uint64) Element[M] {
	return Element[M]{uint32(x % uint64(modulus[M]()))}
}

// Minus constructs the element representing -x mod M.  This is how negative
// integers are brought into the field, since New accepts only unsigned values.
func Minus[M Modulus](x uint64) Element[M] {
	var (
		q = uint64(modulus[M]())
		r = x % q
	)
	// Negating zero must give canonical zero, not q.
	if r == 0 {
		return Element[M]{}
	}
	//
	return Element[M]{uint32(q - r)}
}

// Zero returns the additive identity.
func Zero[M Modulus]() Element[M] {
	return Element[M]{}
}

// One returns the multiplicative identity.
func One[M Modulus]() Element[M] {
	return Element[M]{1}
}

// Add x + y
func (x Element[M]) Add(y Element[M]) Element[M] {
	q := modulus[M]()
	// Both operands are below 2³¹, so the sum fits in 32 bits.
	sum := x[0] + y[0]
	//
	if sum >= q {
		sum -= q
	}
	//
	return Element[M]{sum}
}

// Sub x - y
func (x Element[M]) Sub(y Element[M]) Element[M] {
	return x.Add(y.Neg())
}

// Neg -x
func (x Element[M]) Neg() Element[M] {
	return Minus[M](uint64(x[0]))
}

// Double 2x
func (x Element[M]) Double() Element[M] {
	return x.Add(x)
}

// Mul x * y
func (x Element[M]) Mul(y Element[M]) Element[M] {
	// Widen before multiplying, as the product of two residues below 2³¹
	// needs up to 62 bits.
	prod := uint64(x[0]) * uint64(y[0])
	//
	return New[M](prod)
}

// Inverse x⁻¹, or 0 if x = 0.  Since M is prime, this is x^(M-2).
func (x Element[M]) Inverse() Element[M] {
	if x.IsZero() {
		return x
	}
	//
	var (
		res  = One[M]()
		base = x
		n    = modulus[M]() - 2
	)
	//
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		//
		base = base.Mul(base)
	}
	//
	return res
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element[M]) Cmp(y Element[M]) int {
	return cmp.Compare(x[0], y[0])
}

// IsZero checks whether this value is zero (or not).
func (x Element[M]) IsZero() bool {
	return x[0] == 0
}

// IsOne checks whether this value is one (or not).
func (x Element[M]) IsOne() bool {
	return x[0] == 1
}

// Modulus returns the modulus for the field in question.
func (x Element[M]) Modulus() *big.Int {
	return big.NewInt(int64(modulus[M]()))
}

// Text returns the numerical value of x in the given base.
func (x Element[M]) Text(base int) string {
	return strconv.FormatUint(uint64(x[0]), base)
}

func (x Element[M]) String() string {
	return x.Text(10)
}
