// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/fault"
)

// Length - number of bytes in an identifier
const Length = 32

// Identifier - type for a kitty identifier
// to convert to bytes just use id[:]
type Identifier [Length]byte

// Seed - randomness input to identifier generation
type Seed [Length]byte

// Next - derive an identifier from seed, caller and nonce
func Next(seed Seed, caller *account.Account, nonce uint64) Identifier {
	callerBytes := caller.Bytes()

	buffer := make([]byte, 0, Length+len(callerBytes)+8)
	buffer = append(buffer, seed[:]...)
	buffer = append(buffer, callerBytes...)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, nonce)
	buffer = append(buffer, n...)

	return blake2b.Sum256(buffer)
}

// String - convert a binary identifier to hex string for use by the fmt package (for %s)
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (id Identifier) GoString() string {
	return "<kitty:" + hex.EncodeToString(id[:]) + ">"
}

// Scan - convert a hex representation to an identifier for use by the format package scan routines
func (id *Identifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return id.UnmarshalText(token)
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.ErrInvalidIdentifier
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.ErrInvalidIdentifier
	}
	copy(id[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to an identifier
func FromBytes(id *Identifier, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidIdentifier
	}
	copy(id[:], buffer)
	return nil
}

// FromString - convert a hex string to an identifier
func FromString(s string) (Identifier, error) {
	var id Identifier
	err := id.UnmarshalText([]byte(s))
	return id, err
}
