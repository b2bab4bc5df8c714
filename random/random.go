// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package random - seeds for identifier generation
package random

import (
	"crypto/rand"

	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/logger"
)

// Source - supplies a fresh seed on each call
type Source interface {
	Seed() identifier.Seed
}

type crypto struct{}

// Crypto - seeds from the operating system's random generator
var Crypto Source = crypto{}

// Seed - read a seed from the system generator
func (crypto) Seed() identifier.Seed {
	var seed identifier.Seed
	_, err := rand.Read(seed[:])
	logger.PanicIfError("random.Seed", err)
	return seed
}

// Fixed - always returns the same seed
//
// identifiers still differ between calls as the nonce advances
type Fixed identifier.Seed

// Seed - return the fixed seed
func (f Fixed) Seed() identifier.Seed {
	return identifier.Seed(f)
}
