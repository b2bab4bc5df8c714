// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk registry data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ⧺            = concatenation of byte data
// 3. id           = kitty identifier as 32 byte BLAKE2b-256 digest
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. owner        = account bytes (key variant ⧺ public key)
// 6. *others*     = byte values of various length
//
// Kitties:
//
//   K ⧺ id                     - kitty record
//                                data: dna ⧺ price ⧺ generation
//   O ⧺ id                     - current owner
//                                data: owner
//
// Ownership:
//
//   N ⧺ owner                  - number of kitties owned, next position to append
//                                data: count
//   L ⧺ owner ⧺ count          - dense list of owned kitties
//                                data: id
//   D ⧺ owner ⧺ id             - position in owner list, for compaction after transfer
//                                data: count
//
// All kitties:
//
//   C ⧺ "count"                - number of kitties ever minted
//                                data: count
//   A ⧺ count                  - dense list of all kitties
//                                data: id
//   I ⧺ id                     - position in list of all kitties
//                                data: count
//
// Registry:
//
//   X ⧺ "nonce"                - identity generation nonce
//                                data: count
//
// Balances:
//
//   B ⧺ owner                  - spendable balance
//                                data: big endian uint64
//
// All writes go through a Transaction which buffers them in a LevelDB
// batch; nothing is visible on disk until Commit, and Abort discards
// every buffered write.
package storage
