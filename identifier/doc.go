// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - 256 bit kitty identifiers
//
// a fresh identifier is the BLAKE2b-256 digest of:
//
//   seed(32) ⧺ caller account bytes ⧺ nonce(8, big endian)
//
// the seed comes from an external randomness source, the nonce is the
// registry counter of mint-class operations; identical inputs always
// give the identical identifier
package identifier
