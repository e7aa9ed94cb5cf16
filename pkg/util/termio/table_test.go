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
package termio

import (
	"bytes"
	"testing"

	"github.com/consensys/go-latfield/pkg/util/assert"
)

func Test_Table_Print(t *testing.T) {
	var (
		buf   bytes.Buffer
		table = NewTablePrinter(2, 2)
	)
	//
	table.SetRow(0, "+", "7680")
	table.Set(0, 1, "1")
	table.Set(1, 1, "0")
	table.SetEscape(1, 1, NewAnsiEscape().FgColour(TERM_GREEN))
	table.AnsiEscapes(false)
	table.Print(&buf)
	//
	assert.Equal(t, " + | 7680 |\n 1 |    0 |\n", buf.String())
	assert.Equal(t, uint(2), table.Width())
	assert.Equal(t, "0", table.Get(1, 1))
}

func Test_Table_Escapes(t *testing.T) {
	var (
		buf   bytes.Buffer
		table = NewTablePrinter(1, 1)
	)
	//
	table.Set(0, 0, "1")
	table.SetEscape(0, 0, NewAnsiEscape().FgColour(TERM_CYAN))
	table.Print(&buf)
	//
	assert.Equal(t, "\033[36m 1\033[0m |\n", buf.String())
}

func Test_Width_NotTerminal(t *testing.T) {
	var buf bytes.Buffer
	//
	assert.False(t, IsTerminal(&buf))
	assert.Equal(t, uint(DEFAULT_WIDTH), Width(&buf))
}
