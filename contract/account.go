// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/record"
)

// AccountContractName - name of the account chaincode
const AccountContractName = "account"

// NewAccountChaincode - chaincode for the account ledger
//
// createAccount is kept as an alias since deployed clients call it
func NewAccountChaincode(accounts *account.Accounts) *Chaincode {
	createAccount := func(stub ledger.Stub, args []string) ([]byte, error) {
		balance, err := record.ParseNumber(args[2])
		if nil != err {
			return nil, fmt.Errorf("balance %q: %w", args[2], err)
		}
		return nil, accounts.CreateAccount(stub, args[0], args[1], balance, args[3])
	}

	return newChaincode(AccountContractName, []Operation{
		{
			Name:  "CreateAccount",
			Arity: 4,
			Call:  createAccount,
		},
		{
			Name:  "createAccount",
			Arity: 4,
			Call:  createAccount,
		},
		{
			Name:  "ReadAccount",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				r, err := accounts.ReadAccount(stub, args[0])
				if nil != err {
					return nil, err
				}
				return record.Encode(r)
			},
		},
		{
			Name:  "GetAllAccount",
			Arity: 0,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := accounts.GetAllAccount(stub)
				if nil != err {
					return nil, err
				}
				return encode(results)
			},
		},
		{
			Name:  "AccountExists",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return boolean(accounts.AccountExists(stub, args[0])), nil
			},
		},
		{
			Name:  "DeleteAccount",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return nil, accounts.DeleteAccount(stub, args[0])
			},
		},
		{
			Name:  "TransferMoney",
			Arity: 3,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return nil, accounts.TransferMoney(stub, args[0], args[1], args[2])
			},
		},
		{
			Name:  "QueryAccounts",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := accounts.QueryAccounts(stub, args[0])
				if nil != err {
					return nil, err
				}
				return encode(results)
			},
		},
		{
			Name:  "GetAccountHistory",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := accounts.GetAccountHistory(stub, args[0])
				if nil != err {
					return nil, err
				}
				return encode(results)
			},
		},
		{
			Name:  "InitLedger",
			Arity: 0,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return nil, accounts.InitLedger(stub)
			},
		},
	})
}
