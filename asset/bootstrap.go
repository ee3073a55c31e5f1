// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/record"
)

// initial assets of a new ledger
var bootstrap = []record.Asset{
	{AssetID: "asset1", Name: "Flower of trust", Color: "blue", Size: 5, Owner: "account1", AppraisedValue: 100},
	{AssetID: "asset2", Name: "To the Moiz and beyond", Color: "red", Size: 5, Owner: "account2", AppraisedValue: 100},
	{AssetID: "asset3", Name: "Statue of Moiz", Color: "green", Size: 10, Owner: "account3", AppraisedValue: 200},
	{AssetID: "asset4", Name: "Bigger Shrimp", Color: "yellow", Size: 10, Owner: "account1", AppraisedValue: 200},
	{AssetID: "asset5", Name: "Moiz and Mory", Color: "black", Size: 15, Owner: "account2", AppraisedValue: 250},
	{AssetID: "asset6", Name: "Happy hour", Color: "white", Size: 15, Owner: "account3", AppraisedValue: 250},
}

// InitLedger - create the initial assets
//
// stops at the first failure, e.g. when run twice
func (a *Assets) InitLedger(stub ledger.Stub) error {
	for _, r := range bootstrap {
		err := a.CreateAsset(stub, r.AssetID, r.Name, r.Color, r.Size, r.Owner, r.AppraisedValue)
		if nil != err {
			return err
		}
	}
	a.log.Infof("initialised: %d assets", len(bootstrap))
	return nil
}
