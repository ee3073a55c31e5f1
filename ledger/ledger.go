// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the world state capability used by the contracts
//
// Stub is the subset of the chaincode stub that the transaction
// functions are allowed to call.  It is satisfied by the peer's
// shim.ChaincodeStubInterface and by the local leveldb ledger in the
// storage package.
package ledger

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
)

//go:generate mockgen -destination=mocks/stub.go -package=mocks github.com/bitmark-inc/ledgerd/ledger Stub
//go:generate mockgen -destination=mocks/iterator.go -package=mocks github.com/hyperledger/fabric-chaincode-go/shim StateQueryIteratorInterface,HistoryQueryIteratorInterface

// Stub - world state access for a single transaction
type Stub interface {
	GetTxID() string
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
	CreateCompositeKey(objectType string, attributes []string) (string, error)
	GetQueryResult(query string) (shim.StateQueryIteratorInterface, error)
	GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error)
}

// the peer stub must always be usable as a ledger stub
var _ Stub = shim.ChaincodeStubInterface(nil)
