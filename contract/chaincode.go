// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/logger"
)

// Operation - one named transaction function
type Operation struct {
	Name  string
	Arity int
	Call  func(stub ledger.Stub, args []string) ([]byte, error)
}

// Chaincode - dispatch of invocations to a closed set of operations
type Chaincode struct {
	log        *logger.L
	name       string
	names      []string
	operations map[string]Operation
}

// the peer drives the chaincode through this interface
var _ shim.Chaincode = (*Chaincode)(nil)

func newChaincode(name string, operations []Operation) *Chaincode {
	c := &Chaincode{
		log:        logger.New(name + "-contract"),
		name:       name,
		names:      make([]string, 0, len(operations)),
		operations: make(map[string]Operation, len(operations)),
	}
	for _, op := range operations {
		if _, ok := c.operations[op.Name]; ok {
			logger.Panicf("contract: %s  duplicate operation: %s", name, op.Name)
		}
		c.operations[op.Name] = op
		c.names = append(c.names, op.Name)
	}
	return c
}

// Name - the contract name
func (c *Chaincode) Name() string {
	return c.name
}

// Operations - names of all operations in registration order
func (c *Chaincode) Operations() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Init - nothing to do, the ledger is seeded by InitLedger
func (c *Chaincode) Init(stub shim.ChaincodeStubInterface) peer.Response {
	c.log.Infof("init: tx: %s", stub.GetTxID())
	return shim.Success(nil)
}

// Invoke - run the operation named by the transaction proposal
func (c *Chaincode) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	function, args := stub.GetFunctionAndParameters()

	payload, err := c.Execute(stub, function, args)
	if nil != err {
		return shim.Error(Message(err))
	}
	return shim.Success(payload)
}

// Execute - run a named operation against a stub
func (c *Chaincode) Execute(stub ledger.Stub, function string, args []string) ([]byte, error) {
	op, ok := c.operations[function]
	if !ok {
		c.log.Warnf("tx: %s  unknown function: %q", stub.GetTxID(), function)
		return nil, fmt.Errorf("%w: %q", fault.ErrUnknownFunction, function)
	}
	if op.Arity != len(args) {
		return nil, fmt.Errorf("%s: expected: %d  actual: %d: %w", function, op.Arity, len(args), fault.ErrInvalidArgumentCount)
	}

	c.log.Debugf("tx: %s  function: %s  args: %q", stub.GetTxID(), function, args)

	payload, err := op.Call(stub, args)
	if nil != err {
		c.log.Warnf("tx: %s  function: %s  error: %s", stub.GetTxID(), function, err)
		return nil, err
	}
	return payload, nil
}

// Message - error text prefixed with its kind
func Message(err error) string {
	kind := fault.Kind(err)
	if "" == kind {
		return err.Error()
	}
	return kind + ": " + err.Error()
}

// JSON payload of a result
func encode(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// payload of a presence check
func boolean(b bool) []byte {
	if b {
		return []byte("true")
	}
	return []byte("false")
}
