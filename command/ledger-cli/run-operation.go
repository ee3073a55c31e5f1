// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/contract"
	"github.com/bitmark-inc/ledgerd/storage"
)

var errMissingOperation = errors.New("missing operation name")

func runAsset(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	cc := contract.NewAssetChaincode(asset.New(m.config.Asset))
	return runOperation(c, m, cc)
}

func runAccount(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	cc := contract.NewAccountChaincode(account.New(m.config.Account))
	return runOperation(c, m, cc)
}

func runOperation(c *cli.Context, m *metadata, cc *contract.Chaincode) error {
	function := c.Args().First()
	if "" == function {
		return errMissingOperation
	}
	args := []string(c.Args().Tail())

	payload, err := execute(m.ledger, cc, function, args)
	if nil != err {
		m.log.Errorf("%s %s error: %s", cc.Name(), function, err)
		return err
	}

	m.log.Infof("%s %s: ok", cc.Name(), function)
	return printPayload(m.w, payload)
}

// run one operation in its own committed transaction
func execute(ledger *storage.Ledger, cc *contract.Chaincode, function string, args []string) ([]byte, error) {
	var payload []byte
	err := ledger.Execute(func(trx *storage.Transaction) error {
		var err error
		payload, err = cc.Execute(trx, function, args)
		return err
	})
	if nil != err {
		return nil, err
	}
	return payload, nil
}

func runOperations(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	operations := map[string][]string{
		contract.AssetContractName:   contract.NewAssetChaincode(asset.New(m.config.Asset)).Operations(),
		contract.AccountContractName: contract.NewAccountChaincode(account.New(m.config.Account)).Operations(),
	}
	return printJson(m.w, operations)
}
