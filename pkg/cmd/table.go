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
	"fmt"

	"github.com/consensys/go-latfield/pkg/util/field"
	"github.com/consensys/go-latfield/pkg/util/field/dilithium"
	"github.com/consensys/go-latfield/pkg/util/field/koalabear"
	"github.com/consensys/go-latfield/pkg/util/field/kyber"
	"github.com/consensys/go-latfield/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// MAX_TABLE_ROWS bounds the number of residues in a table window.
const MAX_TABLE_ROWS = 1024

func newTableCmd() *cobra.Command {
	tableCmd := &cobra.Command{
		Use:   "table [flags]",
		Short: "Print an addition or multiplication table.",
		Long: `Print an addition, subtraction or multiplication table for a window of
	residues in the selected field.  The window wraps around the modulus, and the
	number of columns is limited by the width of the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFieldAgnosticCmd(cmd, args, tableCmds)
		},
	}
	//
	tableCmd.Flags().String("op", "mul", "operation to tabulate (add, sub or mul)")
	tableCmd.Flags().Uint64("from", 0, "first residue in the window")
	tableCmd.Flags().Uint("count", 8, "number of residues in the window")
	//
	return tableCmd
}

// Available instances
var tableCmds = []FieldAgnosticCmd{
	{field.KYBER, runTableCmd[kyber.Element]},
	{field.DILITHIUM, runTableCmd[dilithium.Element]},
	{field.KOALABEAR, runTableCmd[koalabear.Element]},
}

func runTableCmd[F field.Element[F]](cmd *cobra.Command, _ []string) error {
	var (
		out   = cmd.OutOrStdout()
		from  = GetUint64(cmd, "from")
		count = GetUint(cmd, "count")
		name  = GetString(cmd, "op")
		q     = field.Zero[F]().Modulus().Uint64()
		op    func(F, F) F
	)
	//
	switch name {
	case "add", "+":
		op, name = func(x, y F) F { return x.Add(y) }, "+"
	case "sub", "-":
		op, name = func(x, y F) F { return x.Sub(y) }, "-"
	case "mul", "*":
		op, name = func(x, y F) F { return x.Mul(y) }, "*"
	default:
		return fmt.Errorf("unknown operation \"%s\"", name)
	}
	//
	if count == 0 {
		return fmt.Errorf("empty window")
	} else if count > MAX_TABLE_ROWS {
		return fmt.Errorf("window of %d residues too large (max %d)", count, MAX_TABLE_ROWS)
	} else if from >= q {
		return fmt.Errorf("residue %d out of range (q=%d)", from, q)
	}
	// A window never repeats a residue
	count = uint(min(uint64(count), q))
	//
	var (
		// Each cell is " xxx |"
		cellWidth = uint(len(fmt.Sprint(q-1))) + 3
		cols      = min(count, max(2, termio.Width(out)/cellWidth)-1)
		table     = termio.NewTablePrinter(cols+1, count+1)
		values    = make([]F, count)
	)
	//
	log.Debugf("tabulating %d x %d window from %d", count, cols, from)
	//
	for i := range values {
		values[i] = field.Uint64[F]((from + uint64(i)) % q)
	}
	// Headers
	table.Set(0, 0, name)
	table.SetEscape(0, 0, termio.BoldAnsiEscape())
	//
	for i := range cols {
		table.Set(i+1, 0, values[i].String())
		table.SetEscape(i+1, 0, termio.BoldAnsiEscape())
	}
	// Body
	for row := range count {
		table.Set(0, row+1, values[row].String())
		table.SetEscape(0, row+1, termio.BoldAnsiEscape())
		//
		for col := range cols {
			val := op(values[row], values[col])
			//
			table.Set(col+1, row+1, val.String())
			//
			if val.IsZero() {
				table.SetEscape(col+1, row+1, termio.NewAnsiEscape().FgColour(termio.TERM_RED))
			} else if val.IsOne() {
				table.SetEscape(col+1, row+1, termio.NewAnsiEscape().FgColour(termio.TERM_GREEN))
			}
		}
	}
	//
	table.AnsiEscapes(termio.IsTerminal(out))
	table.Print(out)
	//
	return nil
}
