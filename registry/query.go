// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/kitty"
	"github.com/bitmark-inc/kitties/ownership"
	"github.com/bitmark-inc/logger"
)

// queries only see committed data

// Kitty - fetch a kitty record
func (r *Registry) Kitty(id identifier.Identifier) (*kitty.Kitty, error) {
	return r.kitties.Get(r.db, id)
}

// OwnerOf - current owner of a kitty
func (r *Registry) OwnerOf(id identifier.Identifier) (*account.Account, error) {
	owner, ok := r.owners.OwnerOf(r.db, id)
	if !ok {
		return nil, fault.ErrKittyNotFound
	}
	return owner, nil
}

// OwnedCount - number of kitties held by an account
func (r *Registry) OwnedCount(owner *account.Account) uint64 {
	return r.owners.CountOf(r.db, owner)
}

// KittyOfOwnerByIndex - n'th kitty in an owner's list
func (r *Registry) KittyOfOwnerByIndex(owner *account.Account, n uint64) (identifier.Identifier, error) {
	id, ok := r.owners.KittyOfOwnerByIndex(r.db, owner, n)
	if !ok {
		return id, fault.ErrKittyNotFound
	}
	return id, nil
}

// KittyByIndex - n'th kitty ever minted
func (r *Registry) KittyByIndex(n uint64) (identifier.Identifier, error) {
	id, ok := r.owners.KittyByIndex(r.db, n)
	if !ok {
		return id, fault.ErrKittyNotFound
	}
	return id, nil
}

// TotalKitties - number of kitties ever minted
func (r *Registry) TotalKitties() uint64 {
	return r.owners.TotalCount(r.db)
}

// MaximumCount - largest page returned by a list query
const MaximumCount = 100

// ListKittiesFor - a page of an owner's kitties
func (r *Registry) ListKittiesFor(owner *account.Account, start uint64, count int) ([]ownership.Record, error) {
	if count <= 0 || count > MaximumCount {
		return nil, fault.ErrInvalidCount
	}
	return r.owners.ListKittiesFor(owner, start, count)
}

// ListKitties - a page of all kitties in order of creation
func (r *Registry) ListKitties(start uint64, count int) ([]ownership.Record, error) {
	if count <= 0 || count > MaximumCount {
		return nil, fault.ErrInvalidCount
	}

	total := r.TotalKitties()
	records := make([]ownership.Record, 0, count)
	for n := start; n < total && len(records) < count; n += 1 {
		id, ok := r.owners.KittyByIndex(r.db, n)
		if !ok {
			logger.Criticalf("registry.ListKitties: position: %d  total: %d  missing from list", n, total)
			logger.Panic("registry.ListKitties: list database corrupt")
		}
		records = append(records, ownership.Record{
			N:  n,
			ID: id,
		})
	}
	return records, nil
}

// Nonce - number of kitties created or bred so far
func (r *Registry) Nonce() uint64 {
	nonce, _ := r.db.GetN(r.db.Pool.Nonce, nonceKey)
	return nonce
}
