// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

const (
	uint64ByteSize = 8
)

// key for the count of a list with an empty scope
var unscopedCountKey = []byte("count")

// positionalList - dense list of identifiers plus reverse position index
//
// the scope prefixes every key so one set of pools can hold a list per
// owner; an empty scope is used for the single list of all kitties
type positionalList struct {
	count *storage.PoolHandle // scope → count
	list  *storage.PoolHandle // scope ⧺ position → id
	index *storage.PoolHandle // scope ⧺ id → position
}

func (l positionalList) countKey(scope []byte) []byte {
	if 0 == len(scope) {
		return unscopedCountKey
	}
	return scope
}

func (l positionalList) listKey(scope []byte, position uint64) []byte {
	key := make([]byte, len(scope), len(scope)+uint64ByteSize)
	copy(key, scope)
	n := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(n, position)
	return append(key, n...)
}

func (l positionalList) indexKey(scope []byte, id identifier.Identifier) []byte {
	key := make([]byte, len(scope), len(scope)+identifier.Length)
	copy(key, scope)
	return append(key, id[:]...)
}

// Count - number of identifiers in the list
func (l positionalList) Count(r storage.Reader, scope []byte) uint64 {
	n, _ := r.GetN(l.count, l.countKey(scope))
	return n
}

// At - identifier at a position
func (l positionalList) At(r storage.Reader, scope []byte, position uint64) (identifier.Identifier, bool) {
	var id identifier.Identifier
	packed := r.Get(l.list, l.listKey(scope, position))
	if nil == packed {
		return id, false
	}
	if err := identifier.FromBytes(&id, packed); nil != err {
		logger.Panicf("positionalList.At: scope: %x  position: %d  corrupt id: %x", scope, position, packed)
	}
	return id, true
}

// Position - current position of an identifier
func (l positionalList) Position(r storage.Reader, scope []byte, id identifier.Identifier) (uint64, bool) {
	return r.GetN(l.index, l.indexKey(scope, id))
}

// CanAppend - check the count has room for one more
func (l positionalList) CanAppend(r storage.Reader, scope []byte) error {
	if math.MaxUint64 == l.Count(r, scope) {
		return fault.ErrCounterOverflow
	}
	return nil
}

// Append - add identifier at the end of the list
func (l positionalList) Append(trx storage.Transaction, scope []byte, id identifier.Identifier) error {
	if trx.Has(l.index, l.indexKey(scope, id)) {
		return fault.ErrKittyAlreadyExists
	}

	count := l.Count(trx, scope)
	if math.MaxUint64 == count {
		return fault.ErrCounterOverflow
	}

	trx.Put(l.list, l.listKey(scope, count), id[:])
	trx.PutN(l.index, l.indexKey(scope, id), count)
	trx.PutN(l.count, l.countKey(scope), count+1)
	return nil
}

// Remove - take an identifier out of the list keeping it dense
//
// the last element is moved into the vacated position
func (l positionalList) Remove(trx storage.Transaction, scope []byte, id identifier.Identifier) error {
	count := l.Count(trx, scope)
	if 0 == count {
		return fault.ErrCounterUnderflow
	}
	last := count - 1

	position, ok := l.Position(trx, scope, id)
	if !ok {
		return fault.ErrNotOwner
	}
	if position > last {
		logger.Criticalf("positionalList.Remove: scope: %x  id: %s  position: %d  count: %d", scope, id, position, count)
		logger.Panic("positionalList.Remove: index database corrupt")
	}

	if position != last {
		lastID, ok := l.At(trx, scope, last)
		if !ok {
			logger.Criticalf("positionalList.Remove: scope: %x  missing last position: %d", scope, last)
			logger.Panic("positionalList.Remove: list database corrupt")
		}
		trx.Put(l.list, l.listKey(scope, position), lastID[:])
		trx.PutN(l.index, l.indexKey(scope, lastID), position)
	}

	trx.Delete(l.list, l.listKey(scope, last))
	trx.Delete(l.index, l.indexKey(scope, id))
	trx.PutN(l.count, l.countKey(scope), last)
	return nil
}
