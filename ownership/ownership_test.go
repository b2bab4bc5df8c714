// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/ownership"
)

func TestMint(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	mint(t, db, o, alice, makeID(1), makeID(2))
	mint(t, db, o, bob, makeID(3))

	assert.Equal(t, uint64(2), o.CountOf(db, alice), "alice count")
	assert.Equal(t, uint64(1), o.CountOf(db, bob), "bob count")
	assert.Equal(t, uint64(3), o.TotalCount(db), "total count")

	assert.Equal(t, []identifier.Identifier{makeID(1), makeID(2)}, checkOwnerList(t, db, o, alice), "alice list")
	assert.Equal(t, []identifier.Identifier{makeID(3)}, checkOwnerList(t, db, o, bob), "bob list")

	for i := uint64(0); i < 3; i += 1 {
		id, ok := o.KittyByIndex(db, i)
		assert.True(t, ok, "global position: %d", i)
		assert.Equal(t, makeID(byte(i+1)), id, "global position: %d", i)
	}
	_, ok := o.KittyByIndex(db, 3)
	assert.False(t, ok, "global position beyond count")
}

func TestMintTwice(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	mint(t, db, o, alice, makeID(1))

	trx, _ := db.Begin()
	err := o.Mint(trx, bob, makeID(1))
	assert.Equal(t, fault.ErrKittyAlreadyExists, err, "second mint of same id")
	trx.Abort()

	assert.Equal(t, uint64(0), o.CountOf(db, bob), "bob count")
	assert.Equal(t, uint64(1), o.TotalCount(db), "total count")
	owner, _ := o.OwnerOf(db, makeID(1))
	assert.True(t, alice.Equal(owner), "owner changed")
}

func TestMintOverflow(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)

	trx, _ := db.Begin()
	trx.PutN(db.Pool.OwnerCount, alice.Bytes(), math.MaxUint64)

	err := o.Mint(trx, alice, makeID(1))
	assert.Equal(t, fault.ErrCounterOverflow, err, "owner count overflow")

	// nothing written by the failed mint
	_, ok := o.OwnerOf(trx, makeID(1))
	assert.False(t, ok, "owner record written")
	assert.Equal(t, uint64(0), o.TotalCount(trx), "global list written")
	trx.Abort()

	trx, _ = db.Begin()
	trx.PutN(db.Pool.AllCount, []byte("count"), math.MaxUint64)
	err = o.Mint(trx, alice, makeID(1))
	assert.Equal(t, fault.ErrCounterOverflow, err, "global count overflow")
	assert.Equal(t, uint64(0), o.CountOf(trx, alice), "owner list written")
	trx.Abort()
}

func TestTransferCompactsList(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	a, b, c := makeID(0xa), makeID(0xb), makeID(0xc)
	mint(t, db, o, alice, a, b, c)

	trx, _ := db.Begin()
	err := o.Transfer(trx, a, alice, bob)
	assert.Nil(t, err, "transfer")
	assert.Nil(t, trx.Commit(), "commit")

	// last element moved into the vacated slot
	assert.Equal(t, []identifier.Identifier{c, b}, checkOwnerList(t, db, o, alice), "alice list")
	assert.Equal(t, []identifier.Identifier{a}, checkOwnerList(t, db, o, bob), "bob list")

	// global list is never reordered
	assert.Equal(t, uint64(3), o.TotalCount(db), "total count")
	first, _ := o.KittyByIndex(db, 0)
	assert.Equal(t, a, first, "global first")

	// removing the last element needs no move
	trx, _ = db.Begin()
	assert.Nil(t, o.Transfer(trx, b, alice, bob), "transfer last")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []identifier.Identifier{c}, checkOwnerList(t, db, o, alice), "alice list")
	assert.Equal(t, []identifier.Identifier{a, b}, checkOwnerList(t, db, o, bob), "bob list")
}

func TestTransferConservation(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	owners := []*account.Account{
		makeAccount(t, 1),
		makeAccount(t, 2),
		makeAccount(t, 3),
	}

	ids := make([]identifier.Identifier, 12)
	for i := range ids {
		ids[i] = makeID(byte(i))
		mint(t, db, o, owners[i%len(owners)], ids[i])
	}

	for round := 0; round < 30; round += 1 {
		id := ids[(round*5)%len(ids)]
		from, _ := o.OwnerOf(db, id)
		to := owners[(round*7)%len(owners)]

		trx, _ := db.Begin()
		assert.Nil(t, o.Transfer(trx, id, from, to), "round: %d", round)
		assert.Nil(t, trx.Commit(), "round: %d", round)

		total := uint64(0)
		for _, owner := range owners {
			checkOwnerList(t, db, o, owner)
			total += o.CountOf(db, owner)
		}
		assert.Equal(t, uint64(len(ids)), total, "round: %d", round)
		assert.Equal(t, uint64(len(ids)), o.TotalCount(db), "round: %d", round)
	}
}

func TestSelfTransfer(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)

	a, b := makeID(1), makeID(2)
	mint(t, db, o, alice, a, b)

	trx, _ := db.Begin()
	assert.Nil(t, o.Transfer(trx, a, alice, alice), "self transfer")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, []identifier.Identifier{b, a}, checkOwnerList(t, db, o, alice), "alice list")
}

func TestTransferErrors(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	mint(t, db, o, alice, makeID(1))
	mint(t, db, o, bob, makeID(2))

	trx, _ := db.Begin()
	defer trx.Abort()

	err := o.Transfer(trx, makeID(9), alice, bob)
	assert.Equal(t, fault.ErrKittyNotFound, err, "transfer of missing kitty")

	err = o.Transfer(trx, makeID(2), alice, bob)
	assert.Equal(t, fault.ErrNotOwner, err, "transfer by non owner")

	trx.PutN(db.Pool.OwnerCount, bob.Bytes(), math.MaxUint64)
	err = o.Transfer(trx, makeID(1), alice, bob)
	assert.Equal(t, fault.ErrCounterOverflow, err, "recipient overflow")
	assert.Equal(t, uint64(1), o.CountOf(trx, alice), "sender list changed")
}

func TestRemoveAndCompact(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)

	trx, _ := db.Begin()
	defer trx.Abort()

	err := o.RemoveAndCompact(trx, alice, makeID(1))
	assert.Equal(t, fault.ErrCounterUnderflow, err, "remove from empty list")

	assert.Nil(t, o.Append(trx, alice, makeID(1)), "append")
	err = o.Append(trx, alice, makeID(1))
	assert.Equal(t, fault.ErrKittyAlreadyExists, err, "append twice")

	err = o.RemoveAndCompact(trx, alice, makeID(2))
	assert.Equal(t, fault.ErrNotOwner, err, "remove missing id")

	assert.Nil(t, o.RemoveAndCompact(trx, alice, makeID(1)), "remove")
	assert.Equal(t, uint64(0), o.CountOf(trx, alice), "count after remove")
}

func TestTransferMissingIndexIsFatal(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	id := makeID(1)
	mint(t, db, o, alice, id, makeID(2))

	trx, _ := db.Begin()
	defer trx.Abort()

	trx.Delete(db.Pool.OwnerIndex, append(alice.Bytes(), id[:]...))

	assert.Panics(t, func() {
		_ = o.Transfer(trx, id, alice, bob)
	}, "corrupt index did not panic")
}

func TestListKittiesFor(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	o := ownership.New(db.Pool)
	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)
	carol := makeAccount(t, 3)

	mint(t, db, o, alice, makeID(1))
	mint(t, db, o, bob, makeID(2), makeID(3), makeID(4))
	mint(t, db, o, carol, makeID(5))

	records, err := o.ListKittiesFor(bob, 0, 2)
	assert.Nil(t, err, "list")
	assert.Equal(t, []ownership.Record{
		{N: 0, ID: makeID(2)},
		{N: 1, ID: makeID(3)},
	}, records, "first page")

	// the page stops at the end of bob's list
	records, err = o.ListKittiesFor(bob, 2, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, []ownership.Record{
		{N: 2, ID: makeID(4)},
	}, records, "second page")

	records, err = o.ListKittiesFor(makeAccount(t, 9), 0, 10)
	assert.Nil(t, err, "list")
	assert.Equal(t, 0, len(records), "unknown owner")

	_, err = o.ListKittiesFor(bob, 0, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
}
