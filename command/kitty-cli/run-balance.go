// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kitties/account"
)

type balanceReply struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance,string"`
}

func runCredit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := checkAccount(c.String("account"), m.config.Chain)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	trx, err := m.db.Begin()
	if nil != err {
		return err
	}
	err = m.ledger.Credit(trx, to, amount)
	if nil != err {
		trx.Abort()
		return err
	}
	err = trx.Commit()
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{
		Account: to,
		Balance: m.ledger.BalanceOf(m.db, to),
	})
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccountOrCaller(c.String("account"), m)
	if nil != err {
		return err
	}

	return printJson(m.w, balanceReply{
		Account: owner,
		Balance: m.ledger.BalanceOf(m.db, owner),
	})
}
