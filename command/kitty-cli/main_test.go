// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/fault"
)

type cliFixture struct {
	t      *testing.T
	config string
	stderr string
}

func makeAccount(t *testing.T, b byte, test bool) *account.Account {
	publicKey := make([]byte, 32)
	for i := range publicKey {
		publicKey[i] = b
	}
	a, err := account.New(publicKey, test)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return a
}

// run one command returning the decoded JSON documents it printed
func (f *cliFixture) run(caller *account.Account, arguments ...string) ([]map[string]interface{}, error) {
	var w bytes.Buffer
	var e bytes.Buffer

	args := []string{"kitty-cli", "--config", f.config}
	if nil != caller {
		args = append(args, "--caller", caller.String())
	}
	args = append(args, arguments...)

	err := newApp(&w, &e).Run(args)
	f.stderr = e.String()
	if nil != err {
		return nil, err
	}

	results := []map[string]interface{}{}
	decoder := json.NewDecoder(&w)
	for decoder.More() {
		var r map[string]interface{}
		if err := decoder.Decode(&r); nil != err {
			f.t.Fatalf("decode error: %s  output: %q", err, w.String())
		}
		results = append(results, r)
	}
	return results, nil
}

func TestCommands(t *testing.T) {
	f := &cliFixture{
		t:      t,
		config: writeConfiguration(t, `return { data_directory = "." }`),
	}

	alice := makeAccount(t, 1, true)
	bob := makeAccount(t, 2, true)

	results, err := f.run(nil, "credit", "--account", bob.String(), "--amount", "150")
	assert.Nil(t, err, "credit")
	assert.Equal(t, "150", results[0]["balance"], "credited balance")

	results, err = f.run(alice, "create")
	assert.Nil(t, err, "create")
	assert.Equal(t, 2, len(results), "create output")
	id := results[0]["id"].(string)
	assert.Equal(t, alice.String(), results[0]["owner"], "owner")
	assert.Equal(t, "0", results[0]["price"], "price")
	assert.Equal(t, "created", results[1]["event"], "event")

	results, err = f.run(alice, "set-price", "--id", id, "--price", "100")
	assert.Nil(t, err, "set price")
	assert.Equal(t, "100", results[0]["price"], "price")

	_, err = f.run(bob, "buy", "--id", id, "--max-price", "99")
	assert.Equal(t, fault.ErrPriceTooHigh, err, "price too high")

	results, err = f.run(bob, "buy", "--id", id, "--max-price", "150")
	assert.Nil(t, err, "buy")
	assert.Equal(t, 3, len(results), "buy output")
	assert.Equal(t, bob.String(), results[0]["owner"], "owner after buy")
	assert.Equal(t, "transferred", results[1]["event"], "first event")
	assert.Equal(t, "bought", results[2]["event"], "second event")

	results, err = f.run(nil, "balance", "--account", alice.String())
	assert.Nil(t, err, "balance")
	assert.Equal(t, "100", results[0]["balance"], "seller balance")

	results, err = f.run(bob, "balance")
	assert.Nil(t, err, "balance")
	assert.Equal(t, "50", results[0]["balance"], "buyer balance")

	results, err = f.run(bob, "transfer", "--id", id, "--receiver", alice.String())
	assert.Nil(t, err, "transfer")
	assert.Equal(t, alice.String(), results[0]["owner"], "owner after transfer")

	results, err = f.run(alice, "create")
	assert.Nil(t, err, "create")
	id2 := results[0]["id"].(string)

	results, err = f.run(bob, "breed", "--first", id, "--second", id2)
	assert.Nil(t, err, "breed")
	assert.Equal(t, bob.String(), results[0]["owner"], "child owner")
	assert.Equal(t, float64(1), results[0]["generation"], "child generation")

	results, err = f.run(nil, "owned", "--owner", alice.String())
	assert.Nil(t, err, "owned")
	assert.Equal(t, "2", results[0]["count"], "alice count")

	results, err = f.run(nil, "list", "--count", "2")
	assert.Nil(t, err, "list")
	assert.Equal(t, "3", results[0]["total"], "total")
	assert.Equal(t, "3", results[0]["nonce"], "nonce")
	assert.Equal(t, 2, len(results[0]["kitties"].([]interface{})), "page size")

	results, err = f.run(nil, "kitty", "--id", id)
	assert.Nil(t, err, "kitty")
	assert.Equal(t, alice.String(), results[0]["owner"], "owner")
}

func TestCommandErrors(t *testing.T) {
	f := &cliFixture{
		t:      t,
		config: writeConfiguration(t, `return { data_directory = "." }`),
	}

	_, err := f.run(nil, "create")
	assert.Equal(t, ErrRequiredCaller, err, "missing caller")

	_, err = f.run(makeAccount(t, 1, false), "create")
	assert.Equal(t, ErrWrongChain, err, "live account on test chain")

	_, err = f.run(makeAccount(t, 1, true), "kitty")
	assert.Equal(t, ErrRequiredID, err, "missing id")

	_, err = f.run(makeAccount(t, 1, true), "kitty", "--id", "0011")
	assert.Equal(t, fault.ErrInvalidIdentifier, err, "short id")

	_, err = f.run(makeAccount(t, 1, true), "transfer", "--id", "00")
	assert.NotNil(t, err, "bad transfer")

	err = newApp(&bytes.Buffer{}, &bytes.Buffer{}).Run([]string{"kitty-cli", "create"})
	assert.Equal(t, ErrRequiredConfigFile, err, "missing config")
}

func TestCommandCountLimits(t *testing.T) {
	f := &cliFixture{
		t:      t,
		config: writeConfiguration(t, `return { data_directory = "." }`),
	}

	alice := makeAccount(t, 1, true)

	results, err := f.run(alice, "create")
	assert.Nil(t, err, "create")
	id := results[0]["id"].(string)

	for _, count := range []string{"0", "-1", "101", "9223372036854775807"} {
		_, err = f.run(alice, "owned", "--count", count)
		assert.Equal(t, fault.ErrInvalidCount, err, "owned count: %s", count)

		_, err = f.run(alice, "list", "--count", count)
		assert.Equal(t, fault.ErrInvalidCount, err, "list count: %s", count)
	}

	results, err = f.run(alice, "owned", "--count", "100")
	assert.Nil(t, err, "owned at maximum count")
	kitties := results[0]["kitties"].([]interface{})
	assert.Equal(t, 1, len(kitties), "owned kitties")
	assert.Equal(t, id, kitties[0].(map[string]interface{})["id"], "owned id")

	results, err = f.run(alice, "list", "--count", "100")
	assert.Nil(t, err, "list at maximum count")
	kitties = results[0]["kitties"].([]interface{})
	assert.Equal(t, 1, len(kitties), "listed kitties")
	assert.Equal(t, id, kitties[0].(map[string]interface{})["id"], "listed id")
}

func TestVerboseEventSummary(t *testing.T) {
	f := &cliFixture{
		t:      t,
		config: writeConfiguration(t, `return { data_directory = "." }`),
	}

	_, err := f.run(makeAccount(t, 1, true), "--verbose", "create")
	assert.Nil(t, err, "create")
	assert.Contains(t, f.stderr, "events sent: 1  dropped: 0\n", "event summary")
}
