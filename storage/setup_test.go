// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setupMemory(t *testing.T) *storage.Database {
	db, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}

func TestOpenFileThenReopenReadOnly(t *testing.T) {
	name := filepath.Join(testingDirName, "reopen.leveldb")

	db, err := storage.Open(name, storage.ReadWrite)
	assert.Nil(t, err, "open read/write")

	trx, err := db.Begin()
	assert.Nil(t, err, "begin")
	trx.PutN(db.Pool.Nonce, []byte("nonce"), 42)
	assert.Nil(t, trx.Commit(), "commit")
	db.Close()

	db, err = storage.Open(name, storage.ReadOnly)
	assert.Nil(t, err, "open read only")
	defer db.Close()

	n, found := db.Pool.Nonce.GetN([]byte("nonce"))
	assert.True(t, found, "value not persisted")
	assert.Equal(t, uint64(42), n, "wrong value")

	_, err = db.Begin()
	assert.Equal(t, fault.ErrReadOnlyDatabase, err, "read only database allowed a write")
}

func TestOpenRejectsNewerVersion(t *testing.T) {
	name := filepath.Join(testingDirName, "newer.leveldb")

	raw, err := leveldb.OpenFile(name, nil)
	assert.Nil(t, err, "raw open")
	err = raw.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, []byte{0x7f, 0, 0, 0}, nil)
	assert.Nil(t, err, "raw put")
	raw.Close()

	_, err = storage.Open(name, storage.ReadWrite)
	assert.Equal(t, fault.ErrDatabaseVersion, err, "newer database accepted")
}

func TestOpenReadOnlyMissing(t *testing.T) {
	_, err := storage.Open(filepath.Join(testingDirName, "missing.leveldb"), storage.ReadOnly)
	assert.NotNil(t, err, "missing database opened read only")
}
