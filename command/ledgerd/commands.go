// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/ledgerd/contract"
)

// setup command handler
//
// commands that need neither the configuration nor the ledger
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "operations", "ops":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")
		fmt.Printf("  config-test                (cfg)    - just check the configuration\n\n")
		fmt.Printf("  operations                 (ops)    - list the operations of the configured contract\n\n")
		fmt.Printf("  start                      (run)    - run the chaincode\n\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to chaincode commands
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// chaincode command handler
//
// commands that need the configured chaincode but no peer
func processChaincodeCommand(arguments []string, cc *contract.Chaincode) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "operations", "ops":
		for _, name := range cc.Operations() {
			fmt.Printf("%s\n", name)
		}

	default: // start the chaincode
		return false
	}

	return true
}
