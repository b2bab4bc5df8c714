// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/storage"
)

// Store - id → kitty record
type Store interface {
	Exists(storage.Reader, identifier.Identifier) bool
	Get(storage.Reader, identifier.Identifier) (*Kitty, error)
	Put(storage.Transaction, identifier.Identifier, *Kitty)
}

type store struct {
	pool *storage.PoolHandle
}

// NewStore - asset store over a kitty pool
func NewStore(pool *storage.PoolHandle) Store {
	return &store{
		pool: pool,
	}
}

// Exists - check if a kitty has been stored
func (s *store) Exists(r storage.Reader, id identifier.Identifier) bool {
	return r.Has(s.pool, id[:])
}

// Get - fetch and unpack a kitty
func (s *store) Get(r storage.Reader, id identifier.Identifier) (*Kitty, error) {
	packed := r.Get(s.pool, id[:])
	if nil == packed {
		return nil, fault.ErrKittyNotFound
	}
	return Packed(packed).Unpack()
}

// Put - unconditional upsert
func (s *store) Put(trx storage.Transaction, id identifier.Identifier, k *Kitty) {
	trx.Put(s.pool, id[:], k.Pack())
}
