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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-latfield/pkg/util/field/modq"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-latfield")

	specs := []fieldSpecs{
		{Name: "kyber", Title: "Kyber", Modulus: 7681},
		{Name: "dilithium", Title: "Dilithium", Modulus: 8380417},
		{Name: "koalabear", Title: "KoalaBear", Modulus: 1<<31 - 1<<24 + 1},
	}

	for _, spec := range specs {
		cfg, err := spec.config()
		assertNoError(err, "for field \"%s\"", spec.Name)

		assertNoError(bgen.Generate(cfg, spec.Name, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Name),
				Templates: []string{"instance.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", spec.Name),
				Templates: []string{"instance.test.go.tmpl"},
			},
		), "for field \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

type fieldSpecs struct {
	Name    string
	Title   string
	Modulus uint32
}

type fieldConfig struct {
	fieldSpecs
	// Largest canonical residue
	MaxResidue uint32
	// Number of bits needed to hold a canonical residue
	BitWidth int
}

func (f fieldSpecs) config() (*fieldConfig, error) {
	// Reject bad moduli here, rather than generating code which panics on
	// initialisation.
	if err := modq.Check(f.Modulus); err != nil {
		return nil, err
	}

	width := 0
	for m := f.Modulus - 1; m != 0; m >>= 1 {
		width++
	}

	return &fieldConfig{f, f.Modulus - 1, width}, nil
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
