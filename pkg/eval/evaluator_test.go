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
	"strings"
	"testing"

	"github.com/consensys/go-latfield/pkg/sexp"
	"github.com/consensys/go-latfield/pkg/util/assert"
	"github.com/consensys/go-latfield/pkg/util/field/dilithium"
	"github.com/consensys/go-latfield/pkg/util/field/kyber"
)

// ============================================================================
// Positive Tests
// ============================================================================

func Test_Eval_01(t *testing.T) {
	checkKyber(t, "7681", kyber.Zero())
}

func Test_Eval_02(t *testing.T) {
	checkKyber(t, "7682", kyber.One())
}

func Test_Eval_03(t *testing.T) {
	checkKyber(t, "-1", kyber.New(7680))
}

func Test_Eval_04(t *testing.T) {
	checkKyber(t, "(+ 1 1)", kyber.New(2))
}

func Test_Eval_05(t *testing.T) {
	checkKyber(t, "(+ -1 1)", kyber.Zero())
}

func Test_Eval_06(t *testing.T) {
	checkKyber(t, "(* 17 0)", kyber.Zero())
}

func Test_Eval_07(t *testing.T) {
	checkKyber(t, "(- 5)", kyber.Minus(5))
}

func Test_Eval_08(t *testing.T) {
	checkKyber(t, "(- 5 2 1)", kyber.New(2))
}

func Test_Eval_09(t *testing.T) {
	checkKyber(t, "(* (inv 3) 3)", kyber.One())
}

func Test_Eval_10(t *testing.T) {
	checkKyber(t, "(/ 1 2)", kyber.New(3841))
}

func Test_Eval_11(t *testing.T) {
	checkKyber(t, "(^ 2 13)", kyber.New(8192-7681))
}

func Test_Eval_12(t *testing.T) {
	checkKyber(t, "0x1e00", kyber.Minus(1))
}

func Test_Eval_13(t *testing.T) {
	// 2^64 + 1 reduced
	checkKyber(t, "18446744073709551617", kyber.New(18446744073709551615%7681+2))
}

func Test_Eval_14(t *testing.T) {
	checkKyber(t, "(^ -1 0)", kyber.One())
}

func Test_Eval_15(t *testing.T) {
	checkKyber(t, "(* 7680 7680 7680)", kyber.Minus(1))
}

func Test_Eval_Dilithium(t *testing.T) {
	value, err := NewArithmetic[dilithium.Element]().EvaluateString("(+ (^ 2 23) 1)")
	//
	assert.NoError(t, err)
	assert.Equal(t, dilithium.New(1<<13), value)
}

func Test_Eval_All(t *testing.T) {
	srcfile := sexp.NewSourceFile("test", []byte("1 (+ 1 1)\n; three\n(* 3 1)"))
	values, err := NewArithmetic[kyber.Element]().EvaluateAll(srcfile)
	//
	assert.NoError(t, err)
	assert.Equal(t, []kyber.Element{kyber.New(1), kyber.New(2), kyber.New(3)}, values)
}

// ============================================================================
// Negative Tests
// ============================================================================

func Test_EvalErr_01(t *testing.T) {
	checkErr(t, "(inv 0)", 0, "division by zero")
}

func Test_EvalErr_02(t *testing.T) {
	checkErr(t, "(/ 1 (- 2 2))", 0, "division by zero")
}

func Test_EvalErr_03(t *testing.T) {
	checkErr(t, "(+ 1 x)", 5, "invalid literal")
}

func Test_EvalErr_04(t *testing.T) {
	checkErr(t, "(sqrt 4)", 0, "unknown operation")
}

func Test_EvalErr_05(t *testing.T) {
	checkErr(t, "(^ 2 (+ 1 1))", 5, "exponent")
}

func Test_EvalErr_06(t *testing.T) {
	checkErr(t, "(^ 2 -1)", 5, "invalid exponent")
}

func Test_EvalErr_07(t *testing.T) {
	checkErr(t, "(inv 1 2)", 0, "number of arguments")
}

func Test_EvalErr_08(t *testing.T) {
	checkErr(t, "()", 0, "invalid list")
}

func Test_EvalErr_09(t *testing.T) {
	checkErr(t, "", 0, "empty")
}

func Test_EvalErr_10(t *testing.T) {
	checkErr(t, "(+ 1 (* 2 3)", 0, "end-of-file")
}

// ============================================================================
// Helpers
// ============================================================================

func checkKyber(t *testing.T, input string, expected kyber.Element) {
	actual, err := NewArithmetic[kyber.Element]().EvaluateString(input)
	//
	assert.NoError(t, err, "evaluating %s", input)
	assert.Equal(t, expected, actual, "evaluating %s", input)
}

func checkErr(t *testing.T, input string, start int, msg string) {
	var serr *sexp.SyntaxError
	//
	_, err := NewArithmetic[kyber.Element]().EvaluateString(input)
	//
	assert.True(t, errors.As(err, &serr), "expected syntax error for %s, got %v", input, err)
	assert.Equal(t, start, serr.Span().Start(), "error position for %s", input)
	assert.True(t, strings.Contains(serr.Message(), msg), "unexpected message \"%s\"", serr.Message())
}
