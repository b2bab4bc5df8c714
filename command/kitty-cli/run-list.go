// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/kitty"
	"github.com/bitmark-inc/kitties/ownership"
)

type kittyReply struct {
	ID    identifier.Identifier `json:"id"`
	Owner *account.Account      `json:"owner"`
	*kitty.Kitty
}

type ownedReply struct {
	Owner   *account.Account   `json:"owner"`
	Count   uint64             `json:"count,string"`
	Kitties []ownership.Record `json:"kitties"`
}

type listReply struct {
	Total   uint64             `json:"total,string"`
	Nonce   uint64             `json:"nonce,string"`
	Kitties []ownership.Record `json:"kitties"`
}

func printKitty(m *metadata, id identifier.Identifier) error {
	k, err := m.registry.Kitty(id)
	if nil != err {
		return err
	}
	owner, err := m.registry.OwnerOf(id)
	if nil != err {
		return err
	}
	return printJson(m.w, kittyReply{
		ID:    id,
		Owner: owner,
		Kitty: k,
	})
}

func runKitty(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	return printKitty(m, id)
}

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccountOrCaller(c.String("owner"), m)
	if nil != err {
		return err
	}

	start := c.Uint64("start")
	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	records, err := m.registry.ListKittiesFor(owner, start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, ownedReply{
		Owner:   owner,
		Count:   m.registry.OwnedCount(owner),
		Kitties: records,
	})
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := c.Uint64("start")
	count, err := checkCount(c.Int("count"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	records, err := m.registry.ListKitties(start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, listReply{
		Total:   m.registry.TotalKitties(),
		Nonce:   m.registry.Nonce(),
		Kitties: records,
	})
}
