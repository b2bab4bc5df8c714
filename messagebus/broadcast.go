// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/kitties/counter"
	"github.com/bitmark-inc/kitties/event"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Broadcast - event sink that copies every event to all listeners
type Broadcast struct {
	sync.RWMutex
	listeners []chan event.Event
	closed    bool
	sent      counter.Counter
	dropped   counter.Counter
}

// New - create an empty broadcaster
func New() *Broadcast {
	return &Broadcast{}
}

// Chan - register a listener
//
// size zero selects the default queue size
func (b *Broadcast) Chan(size int) <-chan event.Event {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan event.Event, size)

	b.Lock()
	if b.closed {
		close(c)
	} else {
		b.listeners = append(b.listeners, c)
	}
	b.Unlock()
	return c
}

// Emit - queue an event for every listener without waiting
func (b *Broadcast) Emit(e event.Event) {
	b.RLock()
	defer b.RUnlock()

	if b.closed {
		return
	}
	b.sent.Increment()
	for _, c := range b.listeners {
		select {
		case c <- e:
		default:
			b.dropped.Increment()
		}
	}
}

// Close - close all listener channels, later events are ignored
func (b *Broadcast) Close() {
	b.Lock()
	defer b.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for _, c := range b.listeners {
		close(c)
	}
	b.listeners = nil
}

// Sent - number of events emitted
func (b *Broadcast) Sent() uint64 {
	return b.sent.Uint64()
}

// Dropped - number of deliveries lost to full queues
func (b *Broadcast) Dropped() uint64 {
	return b.dropped.Uint64()
}
