// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runSetPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	price := c.Uint64("price")

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "price: %d\n", price)
	}

	err = m.registry.SetPrice(caller, id, price)
	if nil != err {
		return err
	}

	return printKitty(m, id)
}

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	if !c.IsSet("max-price") {
		return ErrRequiredMaxPrice
	}
	maxPrice := c.Uint64("max-price")

	if m.verbose {
		fmt.Fprintf(m.e, "id: %s\n", id)
		fmt.Fprintf(m.e, "buyer: %s\n", caller)
		fmt.Fprintf(m.e, "max price: %d\n", maxPrice)
	}

	err = m.registry.Buy(caller, id, maxPrice)
	if nil != err {
		return err
	}

	return printKitty(m, id)
}
