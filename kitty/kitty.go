// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
)

const (
	uint64ByteSize = 8
)

// structure of the packed kitty record
const (
	dnaStart  = 0
	dnaFinish = dnaStart + DNALength

	priceStart  = dnaFinish
	priceFinish = priceStart + uint64ByteSize

	generationStart  = priceFinish
	generationFinish = generationStart + uint64ByteSize

	// length of the packed record
	packLength = generationFinish
)

// DNALength - number of bytes of genetic code
const DNALength = 32

// DNA - genetic code
type DNA [DNALength]byte

// Kitty - the asset record
type Kitty struct {
	DNA        DNA    `json:"dna"`
	Price      uint64 `json:"price,string"`
	Generation uint64 `json:"generation"`
}

// Packed - packed data to store in database
type Packed []byte

// Pack - pack kitty to byte slice
func (k *Kitty) Pack() Packed {
	packed := make(Packed, packLength)
	copy(packed[dnaStart:dnaFinish], k.DNA[:])
	binary.BigEndian.PutUint64(packed[priceStart:priceFinish], k.Price)
	binary.BigEndian.PutUint64(packed[generationStart:generationFinish], k.Generation)
	return packed
}

// Unpack - unpack record into a kitty
func (packed Packed) Unpack() (*Kitty, error) {
	if packLength != len(packed) {
		return nil, fault.ErrNotKittyPack
	}
	k := &Kitty{
		Price:      binary.BigEndian.Uint64(packed[priceStart:priceFinish]),
		Generation: binary.BigEndian.Uint64(packed[generationStart:generationFinish]),
	}
	copy(k.DNA[:], packed[dnaStart:dnaFinish])
	return k, nil
}

// IsForSale - a zero price means not for sale
func (k *Kitty) IsForSale() bool {
	return 0 != k.Price
}

// Splice - genetic mixing for breeding
//
// start from the base code and take the other parent's byte wherever
// the corresponding byte of the random value is even
func Splice(base DNA, other DNA, random identifier.Identifier) DNA {
	dna := base
	for i, r := range random {
		if 0 == r%2 {
			dna[i] = other[i]
		}
	}
	return dna
}

// String - hex form of genetic code
func (dna DNA) String() string {
	return hex.EncodeToString(dna[:])
}

// MarshalText - convert DNA to hex text
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DNALength))
	hex.Encode(buffer, dna[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to DNA
func (dna *DNA) UnmarshalText(s []byte) error {
	if DNALength != hex.DecodedLen(len(s)) {
		return fault.ErrNotKittyPack
	}
	_, err := hex.Decode(dna[:], s)
	return err
}
