// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/record"
)

// initial accounts of a new ledger
var bootstrap = []record.Account{
	{AccountID: "account1", Bank: "VCB", Balance: 2000, Owner: "Phan nguyen long"},
	{AccountID: "account2", Bank: "Moiz Bank", Balance: 2000, Owner: "The Moiz"},
	{AccountID: "account3", Bank: "Thao Bank", Balance: 2000, Owner: "Moiz the conqueror"},
}

// InitLedger - create the initial accounts
func (a *Accounts) InitLedger(stub ledger.Stub) error {
	for _, r := range bootstrap {
		err := a.CreateAccount(stub, r.AccountID, r.Bank, r.Balance, r.Owner)
		if nil != err {
			return err
		}
	}
	a.log.Infof("initialised: %d accounts", len(bootstrap))
	return nil
}
