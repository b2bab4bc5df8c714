// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/chain"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/registry"
)

// command line errors - keep in alphabetic order
var (
	ErrRequiredAccount    = fault.InvalidError("account is required")
	ErrRequiredCaller     = fault.InvalidError("caller is required")
	ErrRequiredConfigFile = fault.InvalidError("config file is required")
	ErrRequiredID         = fault.InvalidError("kitty id is required")
	ErrRequiredMaxPrice   = fault.InvalidError("maximum price is required")
	ErrRequiredReceiver   = fault.InvalidError("receiver is required")
	ErrWrongChain         = fault.InvalidError("account is not for this chain")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// caller is required by all commands that change state
func checkCaller(m *metadata) (*account.Account, error) {
	if nil == m.caller {
		return nil, ErrRequiredCaller
	}
	return m.caller, nil
}

// decode an account and check that it belongs to the chain
func checkAccount(s string, chainName string) (*account.Account, error) {
	if "" == s {
		return nil, ErrRequiredAccount
	}

	a, err := account.AccountFromBase58(s)
	if nil != err {
		return nil, err
	}
	if a.Test != chain.IsTesting(chainName) {
		return nil, ErrWrongChain
	}
	return a, nil
}

// optional account, defaults to the caller
func checkAccountOrCaller(s string, m *metadata) (*account.Account, error) {
	if "" == s {
		return checkCaller(m)
	}
	return checkAccount(s, m.config.Chain)
}

// kitty id is required
func checkID(s string) (identifier.Identifier, error) {
	if "" == s {
		return identifier.Identifier{}, ErrRequiredID
	}
	return identifier.FromString(s)
}

// page size must be positive and within the registry limit
func checkCount(count int) (int, error) {
	if count <= 0 || count > registry.MaximumCount {
		return 0, fault.ErrInvalidCount
	}
	return count, nil
}
