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
	"math/rand/v2"

	"github.com/consensys/go-latfield/pkg/check"
	"github.com/consensys/go-latfield/pkg/util"
	"github.com/consensys/go-latfield/pkg/util/field"
	"github.com/consensys/go-latfield/pkg/util/field/dilithium"
	"github.com/consensys/go-latfield/pkg/util/field/koalabear"
	"github.com/consensys/go-latfield/pkg/util/field/kyber"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when one or more field properties do not hold.
var ErrCheckFailed = errors.New("field check failed")

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check [flags]",
		Short: "Check field arithmetic against its algebraic properties.",
		Long: `Check field arithmetic against its algebraic properties.
	Random operands (along with boundary residues) are used to check identities,
	commutativity, associativity and distributivity.  Results are also cross-checked
	against math/big and a Montgomery-form implementation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !GetFlag(cmd, "all") {
				return runFieldAgnosticCmd(cmd, args, checkCmds)
			}
			//
			return runCheckAll(cmd, args)
		},
	}
	//
	checkCmd.Flags().Bool("all", false, "check all supported fields (concurrently)")
	checkCmd.Flags().Uint("samples", 100000, "number of random samples to check")
	checkCmd.Flags().Uint64("seed", 0, "seed for the random number generator (0 means random)")
	//
	return checkCmd
}

// Available instances
var checkCmds = []FieldAgnosticCmd{
	{field.KYBER, runCheckCmd[kyber.Element]},
	{field.DILITHIUM, runCheckCmd[dilithium.Element]},
	{field.KOALABEAR, runCheckCmd[koalabear.Element]},
}

func runCheckCmd[F field.Element[F]](cmd *cobra.Command, _ []string) error {
	report, err := checkField[F](cmd, field.GetConfig(GetString(cmd, "field")))
	//
	if err != nil {
		return err
	}
	//
	return printReports(cmd, report)
}

// Check every supported field, each on its own go-routine.
func runCheckAll(cmd *cobra.Command, _ []string) error {
	type outcome struct {
		index  int
		report *check.Report
		err    error
	}
	//
	var (
		c       = make(chan outcome, len(checkCmds))
		reports = make([]*check.Report, len(checkCmds))
	)
	//
	for i, c_ := range checkCmds {
		go func() {
			var (
				report *check.Report
				err    error
			)
			//
			switch c_.Field {
			case field.KYBER:
				report, err = checkField[kyber.Element](cmd, &c_.Field)
			case field.DILITHIUM:
				report, err = checkField[dilithium.Element](cmd, &c_.Field)
			case field.KOALABEAR:
				report, err = checkField[koalabear.Element](cmd, &c_.Field)
			default:
				err = fmt.Errorf("unknown field configuration: %s", c_.Field.Name)
			}
			// Send outcome back
			c <- outcome{i, report, err}
		}()
	}
	// Read responses back from each field.
	for range checkCmds {
		o := <-c
		//
		if o.err != nil {
			return o.err
		}
		//
		reports[o.index] = o.report
	}
	//
	return printReports(cmd, reports...)
}

func checkField[F field.Element[F]](cmd *cobra.Command, cfg *field.Config) (*check.Report, error) {
	var (
		samples = GetUint(cmd, "samples")
		seed    = GetUint64(cmd, "seed")
		stats   = util.NewPerfStats()
	)
	//
	if seed == 0 {
		seed = rand.Uint64()
	}
	//
	log.Debugf("checking %s with %d samples (seed %d)", cfg.Name, samples, seed)
	//
	report, err := check.Run[F](*cfg, rand.New(rand.NewPCG(seed, seed)), samples)
	//
	stats.Log(fmt.Sprintf("Checking %s", cfg.Name))
	//
	return report, err
}

func printReports(cmd *cobra.Command, reports ...*check.Report) error {
	var (
		out = cmd.OutOrStdout()
		ok  = true
	)
	//
	for _, r := range reports {
		if r.Ok() {
			fmt.Fprintf(out, "%s: ok (%d samples, %d checks)\n", r.Field.Name, r.Samples, r.Checks)
			continue
		}
		//
		ok = false
		//
		fmt.Fprintf(out, "%s: FAILED (%d of %d checks)\n", r.Field.Name, r.Errors, r.Checks)
		//
		for _, f := range r.Failures {
			fmt.Fprintf(out, "\t%s\n", f.String())
		}
	}
	//
	if !ok {
		return ErrCheckFailed
	}
	//
	return nil
}
