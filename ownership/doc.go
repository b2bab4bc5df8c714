// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - who owns which kitty
//
// from storage/doc.go:
//
//   O ⧺ id                 - current owner
//   N ⧺ owner              - count of owned kitties
//   L ⧺ owner ⧺ count      - dense list of owned kitties
//   D ⧺ owner ⧺ id         - position in list of owned kitties, for compaction after transfer
//   C ⧺ "count"            - count of all kitties
//   A ⧺ count              - dense list of all kitties
//   I ⧺ id                 - position in list of all kitties
//
// for every scope and every position p < count:
//
//   index[list[p]] == p
//
// removal moves the last element of a list into the vacated slot, so
// the order in which an owner's kitties are enumerated is NOT stable
// across transfers
package ownership
