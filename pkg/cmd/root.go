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
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// newRootCmd constructs the base command, along with all subcommands.  A fresh
// command tree is constructed each time, such that flag state never leaks
// between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "latfield",
		Short: "Prime field arithmetic for lattice cryptography.",
		Long: `A toolbox for exact arithmetic over the small prime fields used by lattice
schemes, such as Kyber (q=7681) and Dilithium (q=8380417).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if GetFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			//
			if GetFlag(cmd, "version") {
				fmt.Fprint(out, "latfield ")
				if Version != "" {
					// Built via "make"
					fmt.Fprintf(out, "%s", Version)
				} else if info, ok := debug.ReadBuildInfo(); ok {
					// Built via "go install"
					fmt.Fprintf(out, "%s", info.Main.Version)
				} else {
					// Unknown, perhaps "go run"
					fmt.Fprintf(out, "(unknown version)")
				}
				fmt.Fprintln(out)
			} else {
				fmt.Fprint(out, cmd.UsageString())
			}
		},
	}
	//
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("field", "f", "KYBER", "prime field to use throughout")
	//
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newFieldsCmd())
	//
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd := newRootCmd()
	//
	if err := rootCmd.Execute(); err != nil {
		reportError(rootCmd, err)
		os.Exit(1)
	}
}
