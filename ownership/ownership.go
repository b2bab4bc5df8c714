// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

// Record - an owned kitty as returned by ListKittiesFor
type Record struct {
	N  uint64                `json:"n,string"`
	ID identifier.Identifier `json:"id"`
}

// Ownership - ownership index operations
type Ownership interface {
	OwnerOf(storage.Reader, identifier.Identifier) (*account.Account, bool)
	CountOf(storage.Reader, *account.Account) uint64
	TotalCount(storage.Reader) uint64
	KittyOfOwnerByIndex(storage.Reader, *account.Account, uint64) (identifier.Identifier, bool)
	KittyByIndex(storage.Reader, uint64) (identifier.Identifier, bool)
	Append(storage.Transaction, *account.Account, identifier.Identifier) error
	RemoveAndCompact(storage.Transaction, *account.Account, identifier.Identifier) error
	Mint(storage.Transaction, *account.Account, identifier.Identifier) error
	Transfer(storage.Transaction, identifier.Identifier, *account.Account, *account.Account) error
	ListKittiesFor(*account.Account, uint64, int) ([]Record, error)
}

type ownership struct {
	owner *storage.PoolHandle
	owned positionalList
	all   positionalList
}

// New - create an ownership index over the database pools
func New(pools storage.Pools) Ownership {
	return &ownership{
		owner: pools.KittyOwner,
		owned: positionalList{
			count: pools.OwnerCount,
			list:  pools.OwnerList,
			index: pools.OwnerIndex,
		},
		all: positionalList{
			count: pools.AllCount,
			list:  pools.AllList,
			index: pools.AllIndex,
		},
	}
}

// OwnerOf - current owner of a kitty
func (o *ownership) OwnerOf(r storage.Reader, id identifier.Identifier) (*account.Account, bool) {
	packed := r.Get(o.owner, id[:])
	if nil == packed {
		return nil, false
	}
	owner, err := account.AccountFromBytes(packed)
	if nil != err {
		logger.Criticalf("ownership.OwnerOf: id: %s  owner: %x  error: %s", id, packed, err)
		logger.Panic("ownership.OwnerOf: owner database corrupt")
	}
	return owner, true
}

// CountOf - number of kitties held by an owner
func (o *ownership) CountOf(r storage.Reader, owner *account.Account) uint64 {
	return o.owned.Count(r, owner.Bytes())
}

// TotalCount - number of kitties ever minted
func (o *ownership) TotalCount(r storage.Reader) uint64 {
	return o.all.Count(r, nil)
}

// KittyOfOwnerByIndex - n'th kitty in an owner's list
func (o *ownership) KittyOfOwnerByIndex(r storage.Reader, owner *account.Account, n uint64) (identifier.Identifier, bool) {
	return o.owned.At(r, owner.Bytes(), n)
}

// KittyByIndex - n'th kitty ever minted
func (o *ownership) KittyByIndex(r storage.Reader, n uint64) (identifier.Identifier, bool) {
	return o.all.At(r, nil, n)
}

// Append - add a kitty to the end of an owner's list
func (o *ownership) Append(trx storage.Transaction, owner *account.Account, id identifier.Identifier) error {
	return o.owned.Append(trx, owner.Bytes(), id)
}

// RemoveAndCompact - take a kitty out of an owner's list
func (o *ownership) RemoveAndCompact(trx storage.Transaction, owner *account.Account, id identifier.Identifier) error {
	return o.owned.Remove(trx, owner.Bytes(), id)
}

// Mint - record a new kitty for its first owner
//
// both counts are checked before anything is written
func (o *ownership) Mint(trx storage.Transaction, owner *account.Account, id identifier.Identifier) error {
	if trx.Has(o.owner, id[:]) {
		return fault.ErrKittyAlreadyExists
	}

	scope := owner.Bytes()
	if err := o.owned.CanAppend(trx, scope); nil != err {
		return err
	}
	if err := o.all.CanAppend(trx, nil); nil != err {
		return err
	}

	if err := o.owned.Append(trx, scope, id); nil != err {
		return err
	}
	if err := o.all.Append(trx, nil, id); nil != err {
		return err
	}
	trx.Put(o.owner, id[:], scope)
	return nil
}

// Transfer - move a kitty from one owner to another
//
// the caller must abort the transaction if an error is returned
func (o *ownership) Transfer(trx storage.Transaction, id identifier.Identifier, from *account.Account, to *account.Account) error {
	current, ok := o.OwnerOf(trx, id)
	if !ok {
		return fault.ErrKittyNotFound
	}
	if !current.Equal(from) {
		return fault.ErrNotOwner
	}

	// a self transfer removes first so the count cannot overflow
	if !from.Equal(to) {
		if err := o.owned.CanAppend(trx, to.Bytes()); nil != err {
			return err
		}
	}

	err := o.owned.Remove(trx, from.Bytes(), id)
	if fault.ErrNotOwner == err {
		logger.Criticalf("ownership.Transfer: id: %s  owner: %s  has no list position", id, from)
		logger.Panic("ownership.Transfer: index database corrupt")
	}
	if nil != err {
		return err
	}

	if err := o.owned.Append(trx, to.Bytes(), id); nil != err {
		return err
	}
	trx.Put(o.owner, id[:], to.Bytes())
	return nil
}

// ListKittiesFor - fetch a page of an owner's kitties in list order
//
// only committed data is visible
func (o *ownership) ListKittiesFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	scope := owner.Bytes()
	cursor := o.owned.list.NewFetchCursor().Seek(o.owned.listKey(scope, start))

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(elements))
	for _, e := range elements {
		if len(e.Key) != len(scope)+uint64ByteSize || !bytes.HasPrefix(e.Key, scope) {
			break
		}
		var id identifier.Identifier
		if err := identifier.FromBytes(&id, e.Value); nil != err {
			logger.Criticalf("ownership.ListKittiesFor: owner: %s  key: %x  corrupt id: %x", owner, e.Key, e.Value)
			logger.Panic("ownership.ListKittiesFor: list database corrupt")
		}
		records = append(records, Record{
			N:  binary.BigEndian.Uint64(e.Key[len(scope):]),
			ID: id,
		})
	}
	return records, nil
}
