// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - notifications of completed registry operations
package event

import (
	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/identifier"
)

// Event - any notification
type Event interface {
	Name() string
}

// Created - a kitty was minted
type Created struct {
	Owner *account.Account      `json:"owner"`
	ID    identifier.Identifier `json:"id"`
}

// PriceSet - the owner changed the price
type PriceSet struct {
	Owner *account.Account      `json:"owner"`
	ID    identifier.Identifier `json:"id"`
	Price uint64                `json:"price,string"`
}

// Transferred - a kitty changed owner
type Transferred struct {
	From *account.Account      `json:"from"`
	To   *account.Account      `json:"to"`
	ID   identifier.Identifier `json:"id"`
}

// Bought - a kitty was sold
type Bought struct {
	Buyer  *account.Account      `json:"buyer"`
	Seller *account.Account      `json:"seller"`
	ID     identifier.Identifier `json:"id"`
	Price  uint64                `json:"price,string"`
}

// Name - event type
func (Created) Name() string { return "created" }

// Name - event type
func (PriceSet) Name() string { return "priceSet" }

// Name - event type
func (Transferred) Name() string { return "transferred" }

// Name - event type
func (Bought) Name() string { return "bought" }

// Sink - receives events, must not block
type Sink interface {
	Emit(Event)
}

type discard struct{}

// Discard - a sink that drops everything
var Discard Sink = discard{}

func (discard) Emit(Event) {}
