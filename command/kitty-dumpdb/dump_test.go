// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/kitty"
	"github.com/bitmark-inc/kitties/storage"
)

func TestDecodeValue(t *testing.T) {
	k := kitty.Kitty{Price: 5, Generation: 2}
	k.DNA[0] = 0xab
	assert.Equal(t, "dna: "+k.DNA.String()+"  price: 5  generation: 2", decodeValue("K", k.Pack()), "kitty")

	owner, err := account.New(bytes.Repeat([]byte{0x11}, 32), true)
	assert.Nil(t, err, "account")
	assert.Equal(t, owner.String(), decodeValue("O", owner.Bytes()), "owner")

	id := identifier.Identifier{0xfe, 0x01}
	assert.Equal(t, id.String(), decodeValue("L", id[:]), "list")
	assert.Equal(t, id.String(), decodeValue("A", id[:]), "all list")

	assert.Equal(t, "258", decodeValue("N", []byte{0, 0, 0, 0, 0, 0, 1, 2}), "count")
	assert.Equal(t, "3 bytes", decodeValue("B", []byte{1, 2, 3}), "short count")
}

func setupCounts(t *testing.T) *storage.Database {
	db := setupDatabase(t)
	trx, err := db.Begin()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	trx.PutN(db.Pool.OwnerCount, []byte{0x01, 0x02}, 7)
	trx.PutN(db.Pool.OwnerCount, []byte{0x02, 0x00}, 9)
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return db
}

func TestDump(t *testing.T) {
	db := setupCounts(t)
	defer db.Close()

	buffer := &bytes.Buffer{}
	d := newDumper(buffer, "N", false)
	d.decode = true
	err := d.dump(db.Pool.OwnerCount.NewFetchCursor(), nil, 10)
	assert.Nil(t, err, "dump")
	assert.Equal(t, "0: Key: 0102\n0: Val: 0000000000000007\n0: Dec: 7\n"+
		"1: Key: 0200\n1: Val: 0000000000000009\n1: Dec: 9\n", buffer.String(), "dump")
}

func TestDumpCount(t *testing.T) {
	db := setupCounts(t)
	defer db.Close()

	buffer := &bytes.Buffer{}
	d := newDumper(buffer, "N", false)
	err := d.dump(db.Pool.OwnerCount.NewFetchCursor(), nil, 1)
	assert.Nil(t, err, "dump")
	assert.Equal(t, "0: Key: 0102\n0: Val: 0000000000000007\n", buffer.String(), "single record")
}

func TestDumpEarlyStop(t *testing.T) {
	db := setupCounts(t)
	defer db.Close()

	prefix := []byte{0x01}

	buffer := &bytes.Buffer{}
	d := newDumper(buffer, "N", false)
	d.earlyStop = true
	err := d.dump(db.Pool.OwnerCount.NewFetchCursor().Seek(prefix), prefix, 10)
	assert.Nil(t, err, "dump")
	assert.Equal(t, "0: Key: 0102\n0: Val: 0000000000000007\n*** early stop\n", buffer.String(), "early stop")
}

func TestHexDump(t *testing.T) {
	buffer := &bytes.Buffer{}
	d := newDumper(buffer, "K", false)
	d.hexDump("> ", "", []byte("AB\x00"))

	expected := "> 0000  41 42 00 " + string(bytes.Repeat([]byte(" "), 3*13)) + " " +
		string(bytes.Repeat([]byte(" "), 3*16)) + " |AB.|\n"
	assert.Equal(t, expected, buffer.String(), "hex dump")
}
