// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/event"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/kitty"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

// Create - mint a generation zero kitty for the caller
func (r *Registry) Create(caller *account.Account) (identifier.Identifier, error) {
	var id identifier.Identifier

	err := r.run("create", func(trx storage.Transaction, events *[]event.Event) error {
		newID, nonce, err := r.nextID(trx, caller)
		if nil != err {
			return err
		}

		k := &kitty.Kitty{
			DNA:        kitty.DNA(newID),
			Price:      0,
			Generation: 0,
		}
		if err := r.mint(trx, caller, newID, k, events); nil != err {
			return err
		}
		trx.PutN(r.db.Pool.Nonce, nonceKey, nonce)

		id = newID
		r.log.Debugf("create: %s  owner: %s", newID, caller)
		return nil
	})
	return id, err
}

// SetPrice - owner offers a kitty for sale, zero withdraws it
func (r *Registry) SetPrice(caller *account.Account, id identifier.Identifier, price uint64) error {
	return r.run("setPrice", func(trx storage.Transaction, events *[]event.Event) error {
		k, err := r.kitties.Get(trx, id)
		if nil != err {
			return err
		}

		owner, ok := r.owners.OwnerOf(trx, id)
		if !ok || !owner.Equal(caller) {
			return fault.ErrNotOwner
		}

		k.Price = price
		r.kitties.Put(trx, id, k)

		*events = append(*events, event.PriceSet{
			Owner: caller,
			ID:    id,
			Price: price,
		})
		r.log.Debugf("setPrice: %s  price: %d", id, price)
		return nil
	})
}

// Transfer - owner gives a kitty to another account
func (r *Registry) Transfer(caller *account.Account, to *account.Account, id identifier.Identifier) error {
	return r.run("transfer", func(trx storage.Transaction, events *[]event.Event) error {
		err := r.owners.Transfer(trx, id, caller, to)
		if fault.ErrKittyNotFound == err {
			return fault.ErrNotOwner
		}
		if nil != err {
			return err
		}

		*events = append(*events, event.Transferred{
			From: caller,
			To:   to,
			ID:   id,
		})
		r.log.Debugf("transfer: %s  %s → %s", id, caller, to)
		return nil
	})
}

// Buy - pay the asking price and take ownership
//
// the sale is refused if the asking price is above maxPrice
func (r *Registry) Buy(caller *account.Account, id identifier.Identifier, maxPrice uint64) error {
	return r.run("buy", func(trx storage.Transaction, events *[]event.Event) error {
		k, err := r.kitties.Get(trx, id)
		if nil != err {
			return err
		}

		owner, ok := r.owners.OwnerOf(trx, id)
		if !ok {
			logger.Criticalf("registry.Buy: kitty: %s  has no owner", id)
			logger.Panic("registry.Buy: owner database corrupt")
		}

		if owner.Equal(caller) {
			return fault.ErrSelfTrade
		}
		if !k.IsForSale() {
			return fault.ErrNotForSale
		}
		if k.Price > maxPrice {
			return fault.ErrPriceTooHigh
		}

		price := k.Price
		if err := r.ledger.Transfer(trx, caller, owner, price); nil != err {
			r.log.Warnf("buy: %s  buyer: %s  price: %d  payment error: %s", id, caller, price, err)
			return fmt.Errorf("%w: %s", fault.ErrPaymentFailed, err)
		}

		err = r.owners.Transfer(trx, id, owner, caller)
		if fault.ErrCounterOverflow == err {
			return err
		}
		if nil != err {
			logger.Criticalf("registry.Buy: kitty: %s  seller: %s  buyer: %s  transfer error: %s", id, owner, caller, err)
			logger.Panic("registry.Buy: ownership transfer failed after payment")
		}

		k.Price = 0
		r.kitties.Put(trx, id, k)

		*events = append(*events,
			event.Transferred{
				From: owner,
				To:   caller,
				ID:   id,
			},
			event.Bought{
				Buyer:  caller,
				Seller: owner,
				ID:     id,
				Price:  price,
			},
		)
		r.log.Debugf("buy: %s  seller: %s  buyer: %s  price: %d", id, owner, caller, price)
		return nil
	})
}

// Breed - mint a child of two existing kitties for the caller
//
// the parents may belong to anyone
func (r *Registry) Breed(caller *account.Account, id1 identifier.Identifier, id2 identifier.Identifier) (identifier.Identifier, error) {
	var id identifier.Identifier

	err := r.run("breed", func(trx storage.Transaction, events *[]event.Event) error {
		parent1, err := r.kitties.Get(trx, id1)
		if nil != err {
			return err
		}
		parent2, err := r.kitties.Get(trx, id2)
		if nil != err {
			return err
		}

		generation := parent1.Generation
		if parent2.Generation > generation {
			generation = parent2.Generation
		}
		if math.MaxUint64 == generation {
			return fault.ErrCounterOverflow
		}

		newID, nonce, err := r.nextID(trx, caller)
		if nil != err {
			return err
		}

		k := &kitty.Kitty{
			DNA:        kitty.Splice(parent1.DNA, parent2.DNA, newID),
			Price:      0,
			Generation: generation + 1,
		}
		if err := r.mint(trx, caller, newID, k, events); nil != err {
			return err
		}
		trx.PutN(r.db.Pool.Nonce, nonceKey, nonce)

		id = newID
		r.log.Debugf("breed: %s × %s → %s  generation: %d", id1, id2, newID, k.Generation)
		return nil
	})
	return id, err
}
