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
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/consensys/go-latfield/pkg/sexp"
	"github.com/consensys/go-latfield/pkg/util/field"
)

// ErrDivisionByZero is reported when dividing by (or inverting) zero.
var ErrDivisionByZero = errors.New("division by zero")

var (
	unary    = Arity{1, 1}
	binary   = Arity{2, 2}
	variadic = Arity{1, -1}
	atLeast2 = Arity{2, -1}
)

// NewArithmetic constructs an evaluator supporting the usual field operations:
//
//	(+ x y ...)   sum
//	(- x)         negation
//	(- x y ...)   difference
//	(* x y ...)   product
//	(/ x y ...)   quotient (division by zero is an error)
//	(inv x)       inverse (inverting zero is an error)
//	(^ x n)       power, where n is a non-negative integer literal
func NewArithmetic[F field.Element[F]]() *Evaluator[F] {
	p := NewEvaluator[F]()
	//
	p.AddRecursiveRule("+", variadic, func(args []F) (F, error) {
		return field.Sum(args...), nil
	})
	p.AddRecursiveRule("-", variadic, func(args []F) (F, error) {
		if len(args) == 1 {
			return args[0].Neg(), nil
		}
		//
		return args[0].Sub(field.Sum(args[1:]...)), nil
	})
	p.AddRecursiveRule("*", variadic, func(args []F) (F, error) {
		return field.Product(args...), nil
	})
	p.AddRecursiveRule("/", atLeast2, func(args []F) (F, error) {
		divisor := field.Product(args[1:]...)
		//
		if divisor.IsZero() {
			return divisor, ErrDivisionByZero
		}
		//
		return args[0].Mul(divisor.Inverse()), nil
	})
	p.AddRecursiveRule("inv", unary, func(args []F) (F, error) {
		if args[0].IsZero() {
			return args[0], ErrDivisionByZero
		}
		//
		return args[0].Inverse(), nil
	})
	p.AddListRule("^", binary, evalPow[F])
	//
	return p
}

func evalPow[F field.Element[F]](ctx *Context[F], args []sexp.SExp) (F, error) {
	var empty F
	//
	base, err := ctx.Evaluate(args[0])
	if err != nil {
		return empty, err
	}
	// Exponents are plain integers, not field elements.
	exp, ok := args[1].(*sexp.Symbol)
	if !ok {
		return empty, ctx.SyntaxError(args[1], "exponent must be an integer literal")
	}
	//
	n, err := strconv.ParseUint(exp.Value, 0, 64)
	if err != nil {
		return empty, ctx.SyntaxError(args[1], fmt.Sprintf("invalid exponent %s", exp.Value))
	}
	//
	return field.Pow(base, n), nil
}
