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
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/gnark-crypto/field/koalabear"
	"github.com/consensys/go-latfield/pkg/util/assert"
)

var moduli = []uint32{7681, 8380417, 1<<31 - 1}

func newField(t *testing.T, modulus uint32) Field {
	f, err := NewField(modulus)
	assert.NoError(t, err)
	//
	return f
}

func TestField_New(t *testing.T) {
	_, err := NewField(1 << 31)
	assert.ErrorIs(t, err, ErrModulusTooLarge)
	_, err = NewField(8192)
	assert.ErrorIs(t, err, ErrEvenModulus)
	_, err = NewField(1)
	assert.ErrorIs(t, err, ErrEvenModulus)
}

func TestField_NegModulusInv(t *testing.T) {
	for _, p := range moduli {
		f := newField(t, p)
		// m * (-m⁻¹) = -1 (mod 2³²)
		assert.Equal(t, uint32(1<<32-1), p*f.negModulusInvModR, "modulus %d", p)
	}
}

func TestField_rSq(t *testing.T) {
	for _, p := range []uint64{3, 5, 7, 11, 7681, 8380417, 1<<31 - 1} {
		assert.Equal(t, (((1<<63)%p)*2)%p, newField(t, uint32(p)).rSq, "modulus %d", p)
	}
}

func TestField_RoundTrip(t *testing.T) {
	for _, p := range moduli {
		f := newField(t, p)
		//
		for range 10000 {
			a := rand.Uint32N(p)
			assert.Equal(t, a, f.ToUint32(f.NewElement(a)), "modulus %d", p)
			assert.Equal(t, a, f.ToUint32(f.FromUint64(uint64(a)+uint64(p)*7)), "modulus %d", p)
		}
		//
		assert.Equal(t, uint32(1), f.ToUint32(f.One()))
	}
}

func TestField_Mul(t *testing.T) {
	for _, p := range moduli {
		f := newField(t, p)

		var i, j, m big.Int

		m.SetUint64(uint64(p))

		for range 10000 {
			a := rand.Uint32N(p)
			b := rand.Uint32N(p)

			i.SetUint64(uint64(a)).
				Mul(&i, j.SetUint64(uint64(b))).
				Lsh(&i, 32).
				Mod(&i, &m)

			x := f.NewElement(a)
			y := f.NewElement(b)

			x = f.Mul(x, y)

			assert.Equal(t, i.Uint64(), x[0])
		}
	}
}

func TestField_Sub(t *testing.T) {
	for _, p := range moduli {
		f := newField(t, p)

		var i, j, m big.Int

		m.SetUint64(uint64(p))

		for range 10000 {
			a := rand.Uint32N(p)
			b := rand.Uint32N(p)

			i.SetUint64(uint64(a)).
				Sub(&i, j.SetUint64(uint64(b))).
				Lsh(&i, 32).
				Mod(&i, &m)

			x := f.NewElement(a)
			y := f.NewElement(b)

			x = f.Sub(x, y)

			assert.Equal(t, i.Uint64(), x[0])
		}
	}
}

func TestField_Inverse(t *testing.T) {
	f := newField(t, 8380417)

	var i, m big.Int

	m.SetUint64(uint64(f.modulus))

	for range 10000 {
		a := 1 + rand.Uint32N(f.modulus-1)

		i.SetUint64(uint64(a)).
			ModInverse(&i, &m)

		x := f.Inverse(f.NewElement(a))

		assert.Equal(t, i.Uint64(), f.ToUint32(x), "inverse of %d", a)
	}
	//
	assert.Equal(t, Element{}, f.Inverse(Element{}))
}

func TestField_Halve(t *testing.T) {
	f := newField(t, 7681)

	for range 10000 {
		a := rand.Uint32N(f.modulus)
		x := f.NewElement(a)

		assert.Equal(t, x, f.Double(f.Half(x)), "halving of %d", a)
	}
}

func TestField_Neg(t *testing.T) {
	f := newField(t, 7681)
	//
	assert.Equal(t, Element{}, f.Neg(Element{}))
	assert.Equal(t, uint32(7680), f.ToUint32(f.Neg(f.One())))
}

// Check against gnark-crypto's KoalaBear field, which uses the same
// Montgomery radix.
func TestField_KoalaBear(t *testing.T) {
	f := newField(t, uint32(koalabear.Modulus().Uint64()))

	for range 10000 {
		var (
			a, b = rand.Uint64(), rand.Uint64()
			x, y koalabear.Element
			prod koalabear.Element
		)

		x.SetUint64(a)
		y.SetUint64(b)
		prod.Mul(&x, &y)

		assert.Equal(t, prod.Uint64(), uint64(f.ToUint32(f.Mul(f.FromUint64(a), f.FromUint64(b)))), "%d * %d", a, b)
	}
}
