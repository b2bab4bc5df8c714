// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

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

	// commands must not reinitialise
	initialiseLogging = func(logger.Configuration) error { return nil }
	finaliseLogging = func() {}

	rc := m.Run()

	logger.Finalise()
	removeFiles()
	os.Exit(rc)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "kitty-cli.conf")
	if err := os.WriteFile(fileName, []byte(text), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}
