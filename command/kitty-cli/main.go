// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kitties/account"
	"github.com/bitmark-inc/kitties/balance"
	"github.com/bitmark-inc/kitties/event"
	"github.com/bitmark-inc/kitties/messagebus"
	"github.com/bitmark-inc/kitties/random"
	"github.com/bitmark-inc/kitties/registry"
	"github.com/bitmark-inc/kitties/storage"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	config   *Configuration
	caller   *account.Account
	verbose  bool
	db       *storage.Database
	ledger   *balance.Ledger
	registry *registry.Registry
	bus      *messagebus.Broadcast
	events   <-chan event.Event
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// replaced by tests that set up logging themselves
var (
	initialiseLogging = logger.Initialise
	finaliseLogging   = logger.Finalise
)

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "create, trade and breed kitties"
	app.Version = version
	app.HideVersion = true
	app.Metadata = map[string]interface{}{}

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "caller, a",
			Value: "",
			Usage: " account `ACCOUNT` performing the operation",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "create",
			Usage:  "create a new generation zero kitty owned by the caller",
			Action: runCreate,
		},
		{
			Name:      "set-price",
			Usage:     "offer a kitty for sale, zero price withdraws it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " asking `PRICE`",
				},
			},
			Action: runSetPrice,
		},
		{
			Name:      "transfer",
			Usage:     "give a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*new owner `ACCOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "buy",
			Usage:     "buy a kitty that is for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
				cli.Uint64Flag{
					Name:  "max-price, m",
					Value: 0,
					Usage: "*highest acceptable `PRICE`",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "breed",
			Usage:     "create a child of two existing kitties, owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "first, f",
					Value: "",
					Usage: "*first parent `ID`",
				},
				cli.StringFlag{
					Name:  "second, s",
					Value: "",
					Usage: "*second parent `ID`",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "credit",
			Usage:     "add funds to an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, t",
					Value: "",
					Usage: "*`ACCOUNT` to credit",
				},
				cli.Uint64Flag{
					Name:  "amount, n",
					Value: 0,
					Usage: "*`AMOUNT` to add",
				},
			},
			Action: runCredit,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, t",
					Value: "",
					Usage: " `ACCOUNT` default is the caller",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "kitty",
			Usage:     "display a kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*kitty `ID`",
				},
			},
			Action: runKitty,
		},
		{
			Name:      "owned",
			Usage:     "list the kitties of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` default is the caller",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " starting list position `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "list",
			Usage:     "list all kitties in order of creation",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " starting position `N`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}
		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := getConfiguration(file)
		if nil != err {
			return err
		}

		var caller *account.Account
		if s := c.GlobalString("caller"); "" != s {
			caller, err = checkAccount(s, config.Chain)
			if nil != err {
				return err
			}
		}

		err = initialiseLogging(config.Logging.loggerConfiguration())
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "database: %s\n", config.Database.Name)
		}
		db, err := storage.Open(config.Database.Name, storage.ReadWrite)
		if nil != err {
			finaliseLogging()
			return err
		}

		bus := messagebus.New()
		events := bus.Chan(0)
		ledger := balance.New(db.Pool.Balances)

		r, err := registry.New(db, ledger, random.Crypto, bus, nil)
		if nil != err {
			db.Close()
			finaliseLogging()
			return err
		}

		c.App.Metadata["config"] = &metadata{
			config:   config,
			caller:   caller,
			verbose:  verbose,
			db:       db,
			ledger:   ledger,
			registry: r,
			bus:      bus,
			events:   events,
			e:        e,
			w:        w,
		}
		return nil
	}

	// print the events and release everything
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")

		m.bus.Close()
		err := printEvents(m.w, m.events)
		if m.verbose {
			fmt.Fprintf(m.e, "events sent: %d  dropped: %d\n", m.bus.Sent(), m.bus.Dropped())
		}

		m.db.Close()
		finaliseLogging()
		return err
	}

	return app
}
