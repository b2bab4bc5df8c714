// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/logger"
)

// Reader - read access to pools
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - all-or-nothing group of writes
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newTransaction(db *leveldb.DB, cache Cache) *transaction {
	return &transaction{
		inUse: false,
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

func (t *transaction) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = true
	return nil
}

// Put - buffer a key/value bytes pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.mustBeInUse("Put")
	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.cache.Set(dbPut, string(k), v)
	t.batch.Put(k, v)
}

// PutN - buffer a big endian uint64 value
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

// Delete - buffer removal of a key
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.mustBeInUse("Delete")
	k := p.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Get - read a value, pending writes first
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	k := p.prefixKey(key)
	value, op, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	value, err := t.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

// GetN - read a count value, pending writes first
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return decodeN(key, t.Get(p, key))
}

// Has - check if a key exists, pending writes first
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	k := p.prefixKey(key)
	_, op, found := t.cache.Get(string(k))
	if found {
		return dbPut == op
	}
	value, err := t.db.Has(k, nil)
	logger.PanicIfError("transaction.Has", err)
	return value
}

// Commit - write all buffered changes atomically and end the transaction
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionNotBegun
	}

	err := t.db.Write(t.batch, nil)
	t.reset()
	return err
}

// Abort - discard all buffered changes and end the transaction
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

// must hold lock
func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.Clear()
	t.inUse = false
}

func (t *transaction) mustBeInUse(operation string) {
	if !t.inUse {
		logger.Panicf("transaction.%s: transaction not begun", operation)
	}
}
