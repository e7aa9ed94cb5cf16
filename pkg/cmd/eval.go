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
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/consensys/go-latfield/pkg/eval"
	"github.com/consensys/go-latfield/pkg/sexp"
	"github.com/consensys/go-latfield/pkg/util/field"
	"github.com/consensys/go-latfield/pkg/util/field/dilithium"
	"github.com/consensys/go-latfield/pkg/util/field/koalabear"
	"github.com/consensys/go-latfield/pkg/util/field/kyber"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval [flags] expr...",
		Short: "Evaluate one or more field expressions.",
		Long: `Evaluate one or more field expressions, given as S-expressions.
	Expressions can be given either directly as arguments or within files, for example:

	  latfield eval --field dilithium "(* (inv 3) (- 1))"

	Supported operations are +, -, *, /, inv and ^.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFieldAgnosticCmd(cmd, args, evalCmds)
		},
	}
	//
	evalCmd.Flags().StringArray("file", nil, "read expressions from the given file")
	evalCmd.Flags().Uint("base", 10, "base in which to print results")
	//
	return evalCmd
}

// Available instances
var evalCmds = []FieldAgnosticCmd{
	{field.KYBER, runEvalCmd[kyber.Element]},
	{field.DILITHIUM, runEvalCmd[dilithium.Element]},
	{field.KOALABEAR, runEvalCmd[koalabear.Element]},
}

func runEvalCmd[F field.Element[F]](cmd *cobra.Command, args []string) error {
	var (
		evaluator = eval.NewArithmetic[F]()
		base      = GetUint(cmd, "base")
		files, _  = cmd.Flags().GetStringArray("file")
		srcfiles  []*sexp.SourceFile
	)
	//
	if base < 2 || base > 36 {
		return fmt.Errorf("invalid base %d", base)
	} else if len(args) == 0 && len(files) == 0 {
		return errors.New("no expressions given")
	}
	// Read expressions from files
	for _, filename := range files {
		bytes, err := os.ReadFile(filename)
		if err != nil {
			return err
		}
		//
		srcfiles = append(srcfiles, sexp.NewSourceFile(filename, bytes))
	}
	// Expressions given on the command line
	for i, arg := range args {
		srcfiles = append(srcfiles, sexp.NewSourceFile(fmt.Sprintf("arg%d", i+1), []byte(arg)))
	}
	//
	for _, srcfile := range srcfiles {
		values, err := evaluator.EvaluateAll(srcfile)
		if err != nil {
			return err
		}
		//
		log.Debugf("evaluated %d expression(s) from %s", len(values), srcfile.Filename())
		//
		for _, v := range values {
			fmt.Fprintln(cmd.OutOrStdout(), v.Text(int(base)))
		}
	}
	//
	return nil
}
