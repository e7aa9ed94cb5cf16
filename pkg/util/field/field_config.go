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
package field

import (
	"math/bits"
	"strings"
)

// KYBER is the field used by the original Kyber proposal.
var KYBER = Config{"KYBER", 7681}

// DILITHIUM is the field used by Dilithium (ML-DSA).
var DILITHIUM = Config{"DILITHIUM", 8380417}

// KOALABEAR is the KoalaBear field.  Its modulus sits close to the width-safety
// bound, which makes it useful for exercising near-maximal residues.
var KOALABEAR = Config{"KOALABEAR", 2130706433}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	KYBER,
	DILITHIUM,
	KOALABEAR,
}

// Config identifies a supported field.  The modulus is the only configurable
// aspect of a field, and is fixed for each element type.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Prime modulus of the field.
	Modulus uint32
}

// BitWidth returns the number of bits required to hold a canonical residue.
func (c Config) BitWidth() uint {
	return uint(bits.Len32(c.Modulus - 1))
}

// GetConfig returns the field configuration corresponding with the given
// name (ignoring case), or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if strings.EqualFold(FIELD_CONFIGS[i].Name, name) {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}
