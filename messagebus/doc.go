// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - fan-out of registry events to any number of
// listeners
//
// sending never blocks: a listener whose queue is full misses the
// event and the drop is counted
package messagebus
