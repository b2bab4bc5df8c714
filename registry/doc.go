// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the kitty operations
//
// every operation runs in its own storage transaction: preconditions
// are checked, the writes are made and the transaction is committed;
// any error aborts the transaction so nothing is changed
//
// events are collected while the operation runs and are only passed
// to the sink after a successful commit
package registry
