// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kitties/storage"
)

func TestPoolTags(t *testing.T) {
	tags := storage.PoolTags()
	assert.Equal(t, 10, len(tags), "pool count")
	assert.Equal(t, storage.PoolTag{Name: "Kitties", Prefix: "K"}, tags[0], "first pool")
	assert.Equal(t, storage.PoolTag{Name: "Balances", Prefix: "B"}, tags[len(tags)-1], "last pool")
}

func TestPoolByPrefix(t *testing.T) {
	db, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	defer db.Close()

	p, name, ok := db.PoolByPrefix("O")
	assert.True(t, ok, "owner pool")
	assert.Equal(t, "KittyOwner", name, "name")
	assert.Equal(t, db.Pool.KittyOwner, p, "handle")

	_, _, ok = db.PoolByPrefix("Z")
	assert.False(t, ok, "unknown prefix")
}
