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
package check

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"github.com/consensys/go-latfield/pkg/util/field"
	"github.com/consensys/go-latfield/pkg/util/field/montgomery"
	log "github.com/sirupsen/logrus"
)

// MAX_FAILURES bounds the number of failures recorded in a report.  Failures
// beyond this are counted, but not retained.
const MAX_FAILURES = 32

// Failure records a single violated property.
type Failure struct {
	// Name of the property violated
	Property string
	// Raw operands (before reduction) for which the property failed
	Operands []uint64
	// Expected canonical value
	Expected uint64
	// Actual canonical value
	Actual uint64
}

func (p Failure) String() string {
	return fmt.Sprintf("%s%v: expected %d, got %d", p.Property, p.Operands, p.Expected, p.Actual)
}

// Report summarises the outcome of checking a given field.
type Report struct {
	// Field which was checked
	Field field.Config
	// Number of operand triples sampled
	Samples uint
	// Number of individual property checks performed
	Checks uint
	// Number of property checks which failed
	Errors uint
	// First few failures encountered
	Failures []Failure
}

// Ok determines whether all checks passed.
func (p *Report) Ok() bool {
	return p.Errors == 0
}

// Run checks the arithmetic of field F against its algebraic properties, and
// cross-checks it against both math/big and the Montgomery engine.  Operands
// are drawn from the given source of randomness, and supplemented with
// boundary residues (0, 1, M-2, M-1, M).  An error is returned only if the
// configuration itself is unusable.
func Run[F field.Element[F]](cfg field.Config, rng *rand.Rand, samples uint) (*Report, error) {
	var (
		zero = field.Zero[F]()
		q    = uint64(cfg.Modulus)
	)
	// Sanity check the configuration matches the element type.
	if !zero.Modulus().IsUint64() || zero.Modulus().Uint64() != q {
		return nil, fmt.Errorf("field %s has modulus %d, but elements have modulus %s", cfg.Name, q,
			zero.Modulus().String())
	}
	//
	mont, err := montgomery.NewField(cfg.Modulus)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", cfg.Name, err)
	}
	//
	checker := &checker[F]{q: q, qBig: new(big.Int).SetUint64(q), mont: mont, report: &Report{Field: cfg}}
	//
	checker.checkReduction()
	// Boundary residues
	boundary := []uint64{0, 1, q - 2, q - 1, q}
	//
	for _, a := range boundary {
		for _, b := range boundary {
			checker.checkTriple(a, b, q-1)
		}
	}
	// Random residues
	for i := uint(0); i < samples; i++ {
		checker.checkConstructor(rng.Uint64())
		checker.checkTriple(rng.Uint64N(q+1), rng.Uint64N(q+1), rng.Uint64N(q+1))
		//
		if i > 0 && i%100000 == 0 {
			log.Debugf("%s: checked %d samples (%d errors)", cfg.Name, i, checker.report.Errors)
		}
	}
	//
	return checker.report, nil
}

type checker[F field.Element[F]] struct {
	q      uint64
	qBig   *big.Int
	mont   montgomery.Field
	report *Report
}

func (p *checker[F]) checkReduction() {
	var (
		q    = p.q
		zero = field.Zero[F]()
		one  = field.One[F]()
	)
	//
	p.expect("new(M)", zero, field.Uint64[F](q), q)
	p.expect("new(M+1)", one, field.Uint64[F](q+1), q+1)
	p.expect("new(M-1)", field.Minus[F](1), field.Uint64[F](q-1), q-1)
	p.expect("minus(0)", zero, field.Minus[F](0), 0)
	p.expect("minus(M)", zero, field.Minus[F](q), q)
}

func (p *checker[F]) checkConstructor(x uint64) {
	var (
		zero = field.Zero[F]()
		nx   = field.Uint64[F](x)
		mx   = field.Minus[F](x)
	)
	//
	p.check("canonical(new)", nx.Uint64() < p.q, x)
	p.check("canonical(minus)", mx.Uint64() < p.q, x)
	p.expect("new(x)+minus(x)", zero, nx.Add(mx), x)
	p.expect("new(x)", field.Uint64[F](x%p.q), nx, x)
}

func (p *checker[F]) checkTriple(x, y, z uint64) {
	p.report.Samples++
	//
	var (
		zero    = field.Zero[F]()
		one     = field.One[F]()
		a, b, c = field.Uint64[F](x), field.Uint64[F](y), field.Uint64[F](z)
	)
	// Identities
	p.expect("a+0", a, a.Add(zero), x)
	p.expect("a*1", a, a.Mul(one), x)
	p.expect("a*0", zero, a.Mul(zero), x)
	p.expect("a+(-a)", zero, a.Add(a.Neg()), x)
	// Commutativity
	p.expect("a+b=b+a", a.Add(b), b.Add(a), x, y)
	p.expect("a*b=b*a", a.Mul(b), b.Mul(a), x, y)
	// Associativity
	p.expect("(a+b)+c=a+(b+c)", a.Add(b).Add(c), a.Add(b.Add(c)), x, y, z)
	p.expect("(a*b)*c=a*(b*c)", a.Mul(b).Mul(c), a.Mul(b.Mul(c)), x, y, z)
	// Distributivity
	p.expect("a*(b+c)=a*b+a*c", a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)), x, y, z)
	// Cross-check against math/big
	p.expectUint("big(a+b)", p.bigAdd(x, y), a.Add(b).Uint64(), x, y)
	p.expectUint("big(a*b)", p.bigMul(x, y), a.Mul(b).Uint64(), x, y)
	// Cross-check against Montgomery engine
	var (
		ma = p.mont.FromUint64(x)
		mb = p.mont.FromUint64(y)
	)
	//
	p.expectUint("mont(a+b)", uint64(p.mont.ToUint32(p.mont.Add(ma, mb))), a.Add(b).Uint64(), x, y)
	p.expectUint("mont(a-b)", uint64(p.mont.ToUint32(p.mont.Sub(ma, mb))), a.Sub(b).Uint64(), x, y)
	p.expectUint("mont(a*b)", uint64(p.mont.ToUint32(p.mont.Mul(ma, mb))), a.Mul(b).Uint64(), x, y)
}

func (p *checker[F]) bigAdd(x, y uint64) uint64 {
	var i, j big.Int
	//
	i.SetUint64(x).Add(&i, j.SetUint64(y)).Mod(&i, p.qBig)
	//
	return i.Uint64()
}

func (p *checker[F]) bigMul(x, y uint64) uint64 {
	var i, j big.Int
	//
	i.SetUint64(x).Mul(&i, j.SetUint64(y)).Mod(&i, p.qBig)
	//
	return i.Uint64()
}

func (p *checker[F]) check(property string, ok bool, operands ...uint64) {
	if !ok {
		p.fail(Failure{property, operands, 1, 0})
	} else {
		p.report.Checks++
	}
}

func (p *checker[F]) expect(property string, expected, actual F, operands ...uint64) {
	p.expectUint(property, expected.Uint64(), actual.Uint64(), operands...)
}

func (p *checker[F]) expectUint(property string, expected, actual uint64, operands ...uint64) {
	if expected != actual {
		p.fail(Failure{property, operands, expected, actual})
	} else {
		p.report.Checks++
	}
}

func (p *checker[F]) fail(failure Failure) {
	p.report.Checks++
	p.report.Errors++
	//
	if len(p.report.Failures) < MAX_FAILURES {
		p.report.Failures = append(p.report.Failures, failure)
	}
	//
	log.Debugf("%s: %s", p.report.Field.Name, failure.String())
}
