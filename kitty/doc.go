// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - kitty records and the asset store
//
// the store is the single source of truth for whether a kitty exists
// and what its attributes are; it has no knowledge of ownership
package kitty
