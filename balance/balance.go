// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - account balances held in the kitty database
//
// keeping balances in the same database as the kitties lets a payment
// and the ownership change it pays for commit in a single batch
package balance

import (
	"math"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

// Ledger - balance per account
type Ledger struct {
	log  *logger.L
	pool *storage.PoolHandle
}

// New - create a ledger on a database pool
func New(pool *storage.PoolHandle) *Ledger {
	return &Ledger{
		log:  logger.New("balance"),
		pool: pool,
	}
}

// BalanceOf - current balance, zero for unknown accounts
func (l *Ledger) BalanceOf(r storage.Reader, owner *account.Account) uint64 {
	value, _ := r.GetN(l.pool, owner.Bytes())
	return value
}

// Credit - add funds to an account
func (l *Ledger) Credit(trx storage.Transaction, owner *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.ErrInvalidAmount
	}

	current := l.BalanceOf(trx, owner)
	if current > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(l.pool, owner.Bytes(), current+amount)
	l.log.Debugf("credit: %s  amount: %d  balance: %d", owner, amount, current+amount)
	return nil
}

// Transfer - move funds between accounts
//
// either both balances change or neither does
func (l *Ledger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	available := l.BalanceOf(trx, from)
	if available < amount {
		l.log.Warnf("transfer: %s → %s  amount: %d  available: %d", from, to, amount, available)
		return fault.ErrInsufficientFunds
	}
	if 0 == amount || from.Equal(to) {
		return nil
	}

	received := l.BalanceOf(trx, to)
	if received > math.MaxUint64-amount {
		return fault.ErrBalanceOverflow
	}

	trx.PutN(l.pool, from.Bytes(), available-amount)
	trx.PutN(l.pool, to.Bytes(), received+amount)
	l.log.Debugf("transfer: %s → %s  amount: %d", from, to, amount)
	return nil
}
