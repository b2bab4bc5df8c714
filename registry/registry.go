// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/event"
	"github.com/bitmark-inc/kitties/fault"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/kitty"
	"github.com/bitmark-inc/kitties/ownership"
	"github.com/bitmark-inc/kitties/random"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -destination=mocks/ledger.go -package=mocks github.com/bitmark-inc/kitties/registry Ledger
//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/kitties/random Source
//go:generate mockgen -destination=mocks/sink.go -package=mocks github.com/bitmark-inc/kitties/event Sink

// Ledger - moves funds between accounts inside a storage transaction
//
// a failed transfer must leave both balances unchanged
type Ledger interface {
	Transfer(storage.Transaction, *account.Account, *account.Account, uint64) error
}

// key in the nonce pool
var nonceKey = []byte("nonce")

// Registry - serialised access to the kitty database
type Registry struct {
	sync.Mutex

	log     *logger.L
	db      *storage.Database
	kitties kitty.Store
	owners  ownership.Ownership
	ledger  Ledger
	random  random.Source
	sink    event.Sink
	metrics *metrics
}

// New - create a registry over an open database
//
// a nil registerer leaves the metrics unexported
func New(db *storage.Database, ledger Ledger, source random.Source, sink event.Sink, registerer prometheus.Registerer) (*Registry, error) {
	if nil == db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	if nil == ledger {
		return nil, fault.ErrLedgerIsNotSet
	}
	if nil == source {
		return nil, fault.ErrRandomSourceIsNotSet
	}

	m, err := newMetrics(registerer)
	if nil != err {
		return nil, err
	}

	if nil == sink {
		sink = event.Discard
	}

	r := &Registry{
		log:     logger.New("registry"),
		db:      db,
		kitties: kitty.NewStore(db.Pool.Kitties),
		owners:  ownership.New(db.Pool),
		ledger:  ledger,
		random:  source,
		sink:    sink,
		metrics: m,
	}
	r.log.Infof("kitties: %d  nonce: %d", r.TotalKitties(), r.Nonce())
	return r, nil
}

// run one operation as a single transaction
func (r *Registry) run(operation string, f func(storage.Transaction, *[]event.Event) error) error {
	r.Lock()
	defer r.Unlock()

	trx, err := r.db.Begin()
	if nil != err {
		r.metrics.rejected(operation, err)
		return err
	}

	events := make([]event.Event, 0, 2)
	err = f(trx, &events)
	if nil == err {
		err = trx.Commit()
	} else {
		trx.Abort()
	}
	if nil != err {
		r.log.Debugf("%s: rejected: %s", operation, err)
		r.metrics.rejected(operation, err)
		return err
	}

	r.metrics.committed(operation)
	for _, e := range events {
		r.sink.Emit(e)
	}
	return nil
}

// single admission point for new kitties
func (r *Registry) mint(trx storage.Transaction, to *account.Account, id identifier.Identifier, k *kitty.Kitty, events *[]event.Event) error {
	if r.kitties.Exists(trx, id) {
		return fault.ErrKittyAlreadyExists
	}
	if err := r.owners.Mint(trx, to, id); nil != err {
		return err
	}
	r.kitties.Put(trx, id, k)

	*events = append(*events, event.Created{
		Owner: to,
		ID:    id,
	})
	return nil
}

// next identifier for a caller, with the nonce value to store once the
// mint succeeds
func (r *Registry) nextID(trx storage.Transaction, caller *account.Account) (identifier.Identifier, uint64, error) {
	nonce, _ := trx.GetN(r.db.Pool.Nonce, nonceKey)
	if ^uint64(0) == nonce {
		return identifier.Identifier{}, 0, fault.ErrCounterOverflow
	}
	return identifier.Next(r.random.Seed(), caller, nonce), nonce + 1, nil
}
