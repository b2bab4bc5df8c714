// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	receiver := c.String("receiver")
	if "" == receiver {
		return ErrRequiredReceiver
	}
	to, err := checkAccount(receiver, m.config.Chain)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "sender: %s\n", caller)
		fmt.Fprintf(m.e, "receiver: %s\n", to)
	}

	err = m.registry.Transfer(caller, to, id)
	if nil != err {
		return err
	}

	return printKitty(m, id)
}
