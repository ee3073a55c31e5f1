// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/index"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/query"
	"github.com/bitmark-inc/ledgerd/record"
	"github.com/bitmark-inc/logger"
)

// defaults
const (
	DefaultDocType   = "account"
	DefaultIndexName = "bank~name"
)

// Configuration - account ledger settings
type Configuration struct {
	DocType   string `gluamapper:"doc_type" json:"doc_type"`
	IndexName string `gluamapper:"index_name" json:"index_name"`
}

// DefaultConfiguration - settings matching existing ledgers
func DefaultConfiguration() Configuration {
	return Configuration{
		DocType:   DefaultDocType,
		IndexName: DefaultIndexName,
	}
}

// Accounts - the account ledger service
type Accounts struct {
	log     *logger.L
	docType string
	index   *index.Maintainer
	query   *query.Aggregator
}

// New - create the service, blank settings take their defaults
func New(configuration Configuration) *Accounts {
	if "" == configuration.DocType {
		configuration.DocType = DefaultDocType
	}
	if "" == configuration.IndexName {
		configuration.IndexName = DefaultIndexName
	}

	log := logger.New("account")
	log.Infof("docType: %q  index: %q", configuration.DocType, configuration.IndexName)

	return &Accounts{
		log:     log,
		docType: configuration.DocType,
		index:   index.New(configuration.IndexName),
		query:   query.New(log),
	}
}

// CreateAccount - store a new account and its bank index entry
func (a *Accounts) CreateAccount(stub ledger.Stub, accountID string, bank string, balance record.Number, owner string) error {
	if "" == accountID {
		return fault.ErrEmptyIdentifier
	}
	if balance < 0 {
		return fmt.Errorf("account %s: %w", accountID, fault.ErrInvalidBalance)
	}

	if a.AccountExists(stub, accountID) {
		return fmt.Errorf("account %s: %w", accountID, fault.ErrAlreadyExists)
	}

	indexKey, err := a.index.Key(stub, bank, accountID)
	if nil != err {
		return err
	}

	account := &record.Account{
		DocType:   a.docType,
		AccountID: accountID,
		Bank:      bank,
		Balance:   balance,
		Owner:     owner,
	}
	packed, err := record.Encode(account)
	if nil != err {
		return err
	}

	err = stub.PutState(accountID, packed)
	if nil != err {
		return fmt.Errorf("account %s: put: %w", accountID, err)
	}
	err = a.index.Add(stub, indexKey)
	if nil != err {
		return fmt.Errorf("account %s: index: %w", accountID, err)
	}

	a.log.Infof("created: %s  bank: %s  balance: %s", accountID, bank, balance)
	return nil
}

// ReadAccount - the account matching the id
//
// any query failure is reported as a missing account
func (a *Accounts) ReadAccount(stub ledger.Stub, accountID string) (*record.Account, error) {
	results, err := a.selectAccounts(stub, query.Predicates{"accountID": accountID})
	if nil != err {
		a.log.Warnf("account %s: query failed: %s", accountID, err)
		return nil, fmt.Errorf("account %s: %w", accountID, fault.ErrNotFound)
	}
	if 0 == len(results) {
		return nil, fmt.Errorf("account %s: %w", accountID, fault.ErrNotFound)
	}
	if 1 < len(results) {
		a.log.Warnf("account %s: %d matching records, using key: %s", accountID, len(results), results[0].Key)
	}

	document, ok := results[0].Record.(json.RawMessage)
	if !ok {
		return nil, fmt.Errorf("account %s: %w", accountID, fault.ErrDecodeRecord)
	}
	account, err := record.DecodeAccount(document)
	if nil != err {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	return account, nil
}

// AccountExists - true if any document matches the id
//
// the stored document need not decode; a query failure reads as absent
func (a *Accounts) AccountExists(stub ledger.Stub, accountID string) bool {
	results, err := a.selectAccounts(stub, query.Predicates{"accountID": accountID})
	if nil != err {
		a.log.Warnf("account %s: query failed: %s", accountID, err)
		return false
	}
	return 0 < len(results)
}

// DeleteAccount - remove an account and its bank index entry
func (a *Accounts) DeleteAccount(stub ledger.Stub, accountID string) error {
	if "" == accountID {
		return fault.ErrEmptyIdentifier
	}

	if !a.AccountExists(stub, accountID) {
		return fmt.Errorf("account %s: %w", accountID, fault.ErrNotFound)
	}

	account, err := a.load(stub, accountID)
	if nil != err {
		return err
	}

	indexKey, err := a.index.Key(stub, account.Bank, account.AccountID)
	if nil != err {
		return err
	}

	err = stub.DelState(accountID)
	if nil != err {
		return fmt.Errorf("account %s: delete: %w", accountID, err)
	}
	err = a.index.Remove(stub, indexKey)
	if nil != err {
		return fmt.Errorf("account %s: index: %w", accountID, err)
	}

	a.log.Infof("deleted: %s", accountID)
	return nil
}

// TransferMoney - move an amount from the buyer to the owner
//
// both records are read and checked before either is written
func (a *Accounts) TransferMoney(stub ledger.Stub, buyerID string, ownerID string, amount string) error {
	if buyerID == ownerID {
		return fmt.Errorf("account %s: %w", buyerID, fault.ErrSelfTransfer)
	}

	buyer, err := a.load(stub, buyerID)
	if nil != err {
		return err
	}
	owner, err := a.load(stub, ownerID)
	if nil != err {
		return err
	}

	value, err := record.ParseNumber(amount)
	if nil != err {
		return fmt.Errorf("amount %q: %w", amount, err)
	}
	if value <= 0 {
		return fmt.Errorf("amount %q: %w", amount, fault.ErrInvalidAmount)
	}

	if buyer.Balance < value {
		return fmt.Errorf("account %s: balance: %s  amount: %s: %w", buyerID, buyer.Balance, value, fault.ErrInsufficientBalance)
	}

	buyer.Balance -= value
	owner.Balance += value

	packedBuyer, err := record.Encode(buyer)
	if nil != err {
		return err
	}
	packedOwner, err := record.Encode(owner)
	if nil != err {
		return err
	}

	err = stub.PutState(buyerID, packedBuyer)
	if nil != err {
		return fmt.Errorf("account %s: put: %w", buyerID, err)
	}
	err = stub.PutState(ownerID, packedOwner)
	if nil != err {
		return fmt.Errorf("account %s: put: %w", ownerID, err)
	}

	a.log.Infof("transferred: %s  from: %s  to: %s", value, buyerID, ownerID)
	return nil
}

// GetAllAccount - every account in the world state
func (a *Accounts) GetAllAccount(stub ledger.Stub) ([]query.Result, error) {
	return a.selectAccounts(stub, nil)
}

// QueryAccounts - run a caller supplied selector unchanged
func (a *Accounts) QueryAccounts(stub ledger.Stub, selector string) ([]query.Result, error) {
	results, err := a.query.Run(stub, selector)
	if nil != err {
		return nil, fmt.Errorf("account query: %w", err)
	}
	return results, nil
}

// GetAccountHistory - every committed version of an account
func (a *Accounts) GetAccountHistory(stub ledger.Stub, accountID string) ([]query.Modification, error) {
	results, err := a.query.History(stub, accountID)
	if nil != err {
		return nil, fmt.Errorf("account %s: history: %w", accountID, err)
	}
	return results, nil
}

func (a *Accounts) selectAccounts(stub ledger.Stub, predicates query.Predicates) ([]query.Result, error) {
	selector, err := query.Selector(a.docType, predicates)
	if nil != err {
		return nil, err
	}
	return a.QueryAccounts(stub, selector)
}

// direct read of an account record
func (a *Accounts) load(stub ledger.Stub, accountID string) (*record.Account, error) {
	packed, err := stub.GetState(accountID)
	if nil != err {
		return nil, fmt.Errorf("account %s: get: %w", accountID, err)
	}
	if 0 == len(packed) {
		return nil, fmt.Errorf("account %s: %w", accountID, fault.ErrNotFound)
	}
	account, err := record.DecodeAccount(packed)
	if nil != err {
		return nil, fmt.Errorf("account %s: %w", accountID, err)
	}
	return account, nil
}
