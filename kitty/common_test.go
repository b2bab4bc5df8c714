// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"os"
	"testing"

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

func setupDatabase(t *testing.T) *storage.Database {
	db, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db
}
