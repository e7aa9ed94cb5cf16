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
package modq

import "encoding/binary"

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// Equals implementation for the field.Element interface
func (x Element[M]) Equals(o Element[M]) bool {
	return x == o
}

// Hash implementation for the field.Element interface
func (x Element[M]) Hash() uint64 {
	// FNV1a hash implementation (unrolled)
	hash := offset64
	//
	return (hash ^ uint64(x[0])) * prime64
}

// SetUint64 implementation for the field.Element interface.  The receiver is
// ignored.
func (x Element[M]) SetUint64(val uint64) Element[M] {
	return New[M](val)
}

// Uint64 implementation for the field.Element interface
func (x Element[M]) Uint64() uint64 {
	return uint64(x[0])
}

// SetBytes constructs the element represented by the given big-endian bytes,
// reduced modulo M.  The receiver is ignored.
func (x Element[M]) SetBytes(bytes []byte) Element[M] {
	var (
		q   = uint64(modulus[M]())
		acc uint64
	)
	// acc < 2³¹ on entry, hence acc*256+b < 2³⁹.
	for _, b := range bytes {
		acc = ((acc << 8) | uint64(b)) % q
	}
	//
	return Element[M]{uint32(acc)}
}

// Bytes returns the big-endian encoded value of the Element, using exactly four
// bytes.
func (x Element[M]) Bytes() []byte {
	return binary.BigEndian.AppendUint32(nil, x[0])
}
