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
	"fmt"
	"math/big"

	"github.com/consensys/go-latfield/pkg/sexp"
	"github.com/consensys/go-latfield/pkg/util/field"
)

// ListRule is responsible for evaluating a list with a given sequence of zero or
// more (unevaluated) arguments into a field element.  Rules which need their
// arguments evaluated first should be registered with AddRecursiveRule.
type ListRule[F field.Element[F]] func(ctx *Context[F], args []sexp.SExp) (F, error)

// RecursiveRule evaluates a list whose arguments are themselves evaluated
// first.  This can fail, for example on division by zero.
type RecursiveRule[F field.Element[F]] func([]F) (F, error)

// Arity constrains the number of arguments accepted by a rule.  A negative
// maximum means there is no upper bound.
type Arity struct {
	Min int
	Max int
}

// Evaluator is a generic mechanism for evaluating S-Expressions over a given
// field F.  An Evaluator is not modified by evaluation, and can therefore be
// shared once all rules are registered.
type Evaluator[F field.Element[F]] struct {
	lists map[string]ListRule[F]
}

// Context captures what is needed to report errors against the original
// text, whilst evaluating terms from a given source file.
type Context[F field.Element[F]] struct {
	evaluator *Evaluator[F]
	srcfile   *sexp.SourceFile
	srcmap    *sexp.SourceMap[sexp.SExp]
}

// NewEvaluator constructs an evaluator with no rules.  Only literals can be
// evaluated until rules are added.
func NewEvaluator[F field.Element[F]]() *Evaluator[F] {
	return &Evaluator[F]{
		lists: make(map[string]ListRule[F]),
	}
}

// EvaluateString parses and evaluates exactly one expression.
func (p *Evaluator[F]) EvaluateString(s string) (F, error) {
	var (
		empty   F
		srcfile = sexp.NewSourceFile("", []byte(s))
	)
	//
	term, srcmap, err := srcfile.Parse()
	//
	if err != nil {
		return empty, err
	} else if term == nil {
		return empty, srcfile.SyntaxError(sexp.NewSpan(0, 0), "empty expression")
	}
	//
	ctx := &Context[F]{p, srcfile, srcmap}
	//
	return ctx.Evaluate(term)
}

// EvaluateAll parses and evaluates every expression in a given source file.
func (p *Evaluator[F]) EvaluateAll(srcfile *sexp.SourceFile) ([]F, error) {
	terms, srcmap, err := srcfile.ParseAll()
	//
	if err != nil {
		return nil, err
	}
	//
	var (
		ctx    = &Context[F]{p, srcfile, srcmap}
		values = make([]F, len(terms))
	)
	//
	for i, term := range terms {
		if values[i], err = ctx.Evaluate(term); err != nil {
			return nil, err
		}
	}
	//
	return values, nil
}

// AddListRule adds a new list rule to this evaluator.
func (p *Evaluator[F]) AddListRule(name string, arity Arity, rule ListRule[F]) {
	p.lists[name] = func(ctx *Context[F], args []sexp.SExp) (F, error) {
		var empty F
		//
		if len(args) < arity.Min || (arity.Max >= 0 && len(args) > arity.Max) {
			return empty, fmt.Errorf("incorrect number of arguments for %s (%d)", name, len(args))
		}
		//
		return rule(ctx, args)
	}
}

// AddRecursiveRule adds a new list rule whose arguments are evaluated
// (recursively) before the rule itself is applied.
func (p *Evaluator[F]) AddRecursiveRule(name string, arity Arity, rule RecursiveRule[F]) {
	p.AddListRule(name, arity, func(ctx *Context[F], args []sexp.SExp) (F, error) {
		var (
			empty F
			err   error
			vals  = make([]F, len(args))
		)
		//
		for i, arg := range args {
			if vals[i], err = ctx.Evaluate(arg); err != nil {
				return empty, err
			}
		}
		//
		return rule(vals)
	})
}

// Evaluate a given term, which must originate from this context's source file.
func (p *Context[F]) Evaluate(term sexp.SExp) (F, error) {
	var (
		empty F
		val   F
		err   error
	)
	//
	switch e := term.(type) {
	case *sexp.List:
		val, err = p.evaluateList(e)
	case *sexp.Symbol:
		val, err = Literal[F](e.Value)
	default:
		panic("invalid S-Expression")
	}
	// Attach errors to the term being evaluated, unless this has already been
	// done further down.
	if _, ok := err.(*sexp.SyntaxError); err != nil && !ok {
		return empty, p.SyntaxError(term, err.Error())
	}
	//
	return val, err
}

// SyntaxError constructs an error reported against a given term.
func (p *Context[F]) SyntaxError(term sexp.SExp, msg string) *sexp.SyntaxError {
	var span sexp.Span
	//
	if p.srcmap.Has(term) {
		span = p.srcmap.Get(term)
	}
	//
	return p.srcfile.SyntaxError(span, msg)
}

func (p *Context[F]) evaluateList(list *sexp.List) (F, error) {
	var empty F
	// Sanity check this list makes sense
	if list.Len() == 0 || !list.Elements[0].IsSymbol() {
		return empty, fmt.Errorf("invalid list")
	}
	// Lookup appropriate rule
	rule := p.evaluator.lists[list.Head()]
	// Check whether we found one.
	if rule == nil {
		return empty, fmt.Errorf("unknown operation %s", list.Head())
	}
	//
	return rule(p, list.Elements[1:])
}

// Literal converts an integer literal into a field element.  Literals may be
// negative, and are given in decimal unless prefixed (e.g. 0x, 0b).  There is
// no bound on their size, since they are reduced into the field.
func Literal[F field.Element[F]](s string) (F, error) {
	var (
		empty F
		val   big.Int
	)
	//
	if _, ok := val.SetString(s, 0); !ok {
		return empty, fmt.Errorf("invalid literal %s", s)
	}
	//
	return field.BigInt[F](val), nil
}
