// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/identifier"
	"github.com/bitmark-inc/kitties/kitty"
	"github.com/bitmark-inc/kitties/storage"
)

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	decColour1 = "\033[1;32m"
	endColour  = "\033[0m"
)

type dumper struct {
	w         io.Writer
	tag       string
	ascii     bool
	decode    bool
	earlyStop bool

	ck1 string
	ck2 string
	cv1 string
	cv2 string
	cd1 string
	ce  string
}

func newDumper(w io.Writer, tag string, colour bool) *dumper {
	d := &dumper{
		w:   w,
		tag: tag,
	}
	if colour {
		d.ck1 = keyColour1
		d.ck2 = keyColour2
		d.cv1 = valColour1
		d.cv2 = valColour2
		d.cd1 = decColour1
		d.ce = endColour
	}
	return d
}

// ends the cursor scan once enough records are printed
var errStop = errors.New("stop")

// print up to count records from the cursor position
func (d *dumper) dump(cursor *storage.FetchCursor, prefix []byte, count int) error {
	l := len(prefix)
	i := 0

	err := cursor.Map(func(key []byte, value []byte) error {
		if d.earlyStop && len(key) >= l && !bytes.Equal(prefix, key[:l]) {
			fmt.Fprintf(d.w, "*** early stop\n")
			return errStop
		}

		fmt.Fprintf(d.w, "%d: %sKey: %s%x%s\n", i, d.ck1, d.ck2, key, d.ce)
		if d.ascii {
			leader := fmt.Sprintf("%d: %sVal: %s", i, d.cv1, d.cv2)
			d.hexDump(leader, d.ce, value)
		} else {
			fmt.Fprintf(d.w, "%d: %sVal: %s%x%s\n", i, d.cv1, d.cv2, value, d.ce)
		}
		if d.decode {
			fmt.Fprintf(d.w, "%d: %sDec: %s%s\n", i, d.cd1, decodeValue(d.tag, value), d.ce)
		}

		i += 1
		if i >= count {
			return errStop
		}
		return nil
	})
	if errStop == err {
		return nil
	}
	return err
}

// readable form of a value according to its pool
func decodeValue(tag string, value []byte) string {
	switch tag {
	case "K":
		k, err := kitty.Packed(value).Unpack()
		if nil != err {
			return err.Error()
		}
		return fmt.Sprintf("dna: %s  price: %d  generation: %d", k.DNA, k.Price, k.Generation)

	case "O":
		owner, err := account.AccountFromBytes(value)
		if nil != err {
			return err.Error()
		}
		return owner.String()

	case "L", "A":
		var id identifier.Identifier
		if err := identifier.FromBytes(&id, value); nil != err {
			return err.Error()
		}
		return id.String()

	default:
		if 8 != len(value) {
			return fmt.Sprintf("%d bytes", len(value))
		}
		return fmt.Sprintf("%d", binary.BigEndian.Uint64(value))
	}
}

// dump hex data
func (d *dumper) hexDump(prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(d.w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(d.w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(d.w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(d.w, "   ")
			}
		}
		fmt.Fprintf(d.w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Fprintf(d.w, "%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Fprintf(d.w, "|%s\n", suffix)
	}
}
