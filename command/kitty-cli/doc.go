// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Administer a local kitty registry database
//
// e.g. create a kitty and offer it for sale:
//
//   kitty-cli -c kitty-cli.conf -a CALLER create
//   kitty-cli -c kitty-cli.conf -a CALLER set-price -i ID -p 100
//
// a second account buys it once it holds enough balance:
//
//   kitty-cli -c kitty-cli.conf -a BUYER credit -t BUYER -n 500
//   kitty-cli -c kitty-cli.conf -a BUYER buy -i ID -m 100
package main
