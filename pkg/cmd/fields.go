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
	"github.com/consensys/go-latfield/pkg/util/termio"
	"github.com/spf13/cobra"
)

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the supported prime fields.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := termio.NewTablePrinter(3, uint(len(field.FIELD_CONFIGS))+1)
			//
			table.SetRow(0, "name", "modulus", "bits")
			//
			for i, cfg := range field.FIELD_CONFIGS {
				table.SetRow(uint(i+1), cfg.Name, fmt.Sprint(cfg.Modulus), fmt.Sprint(cfg.BitWidth()))
			}
			//
			table.Print(cmd.OutOrStdout())
			//
			return nil
		},
	}
}
