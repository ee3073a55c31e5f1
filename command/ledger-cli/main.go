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

	"github.com/bitmark-inc/ledgerd/contract"
	"github.com/bitmark-inc/ledgerd/storage"
	"github.com/bitmark-inc/logger"
)

type metadata struct {
	config  *configuration
	ledger  *storage.Ledger
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "ledger-cli"
	app.Usage = "run ledger operations against a local world state"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: "*world state `DIRECTORY`",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " optional lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "asset",
			Usage:     "run an asset ledger operation",
			ArgsUsage: "OPERATION [ARGUMENTS...]",
			Action:    runAsset,
		},
		{
			Name:      "account",
			Usage:     "run an account ledger operation",
			ArgsUsage: "OPERATION [ARGUMENTS...]",
			Action:    runAccount,
		},
		{
			Name:      "operations",
			Usage:     "list the operations of both contracts",
			ArgsUsage: "\n   (* = required)",
			Action:    runOperations,
		},
		{
			Name:      "version",
			Usage:     "display ledger-cli version",
			ArgsUsage: "\n   (* = required)",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		command := c.Args().First()
		switch command {
		case "", "help", "h", "version":
			return nil
		}

		config, err := getConfiguration(c.GlobalString("database"), c.GlobalString("config-file"))
		if nil != err {
			return err
		}
		m.config = config

		if verbose {
			printJson(e, config)
		}

		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.log = logger.New("ledger-cli")
		m.log.Infof("database: %s", config.Database)

		if "operations" == command {
			return nil
		}

		m.ledger, err = storage.Open(config.Database, false)
		if nil != err {
			logger.Finalise()
			return err
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		if nil != m.ledger {
			if err := m.ledger.Close(); nil != err {
				m.log.Errorf("close error: %s", err)
			}
		}
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "error: %s\n", contract.Message(err))
		os.Exit(1)
	}
}

func runVersion(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	_, err := m.w.Write([]byte(version + "\n"))
	return err
}
