// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
	}

	id, err := m.registry.Create(caller)
	if nil != err {
		return err
	}

	return printKitty(m, id)
}

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkCaller(m)
	if nil != err {
		return err
	}

	first, err := checkID(c.String("first"))
	if nil != err {
		return err
	}

	second, err := checkID(c.String("second"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "caller: %s\n", caller)
		fmt.Fprintf(m.e, "first: %s\n", first)
		fmt.Fprintf(m.e, "second: %s\n", second)
	}

	id, err := m.registry.Breed(caller, first, second)
	if nil != err {
		return err
	}

	return printKitty(m, id)
}
