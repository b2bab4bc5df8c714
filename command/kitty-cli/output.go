// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/kitties/event"
)

type eventRecord struct {
	Event string      `json:"event"`
	Data  event.Event `json:"data"`
}

func printJson(handle io.Writer, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// drain the queue of a closed broadcaster
func printEvents(handle io.Writer, events <-chan event.Event) error {
	for e := range events {
		err := printJson(handle, eventRecord{
			Event: e.Name(),
			Data:  e,
		})
		if nil != err {
			return err
		}
	}
	return nil
}
