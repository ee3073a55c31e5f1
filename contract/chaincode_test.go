// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/contract"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/query"
	"github.com/bitmark-inc/ledgerd/record"
	"github.com/bitmark-inc/ledgerd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a peer stub backed by a local transaction
//
// only the calls made by the contracts are implemented, anything else
// panics on the nil embedded interface
type peerStub struct {
	shim.ChaincodeStubInterface
	trx      *storage.Transaction
	function string
	args     []string
}

func (s *peerStub) GetFunctionAndParameters() (string, []string) {
	return s.function, s.args
}

func (s *peerStub) GetTxID() string {
	return s.trx.GetTxID()
}

func (s *peerStub) GetState(key string) ([]byte, error) {
	return s.trx.GetState(key)
}

func (s *peerStub) PutState(key string, value []byte) error {
	return s.trx.PutState(key, value)
}

func (s *peerStub) DelState(key string) error {
	return s.trx.DelState(key)
}

func (s *peerStub) CreateCompositeKey(objectType string, attributes []string) (string, error) {
	return s.trx.CreateCompositeKey(objectType, attributes)
}

func (s *peerStub) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	return s.trx.GetQueryResult(query)
}

func (s *peerStub) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	return s.trx.GetHistoryForKey(key)
}

func setup(t *testing.T) (*contract.Chaincode, *contract.Chaincode, *storage.Ledger) {
	l, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	assets := contract.NewAssetChaincode(asset.New(asset.DefaultConfiguration()))
	accounts := contract.NewAccountChaincode(account.New(account.DefaultConfiguration()))
	return assets, accounts, l
}

// execute in a committed transaction
func execute(l *storage.Ledger, c *contract.Chaincode, function string, args ...string) ([]byte, error) {
	var payload []byte
	err := l.Execute(func(trx *storage.Transaction) error {
		var err error
		payload, err = c.Execute(trx, function, args)
		return err
	})
	return payload, err
}

// invoke through the shim interface in a committed transaction
func invoke(l *storage.Ledger, c *contract.Chaincode, function string, args ...string) (int32, string, []byte) {
	var status int32
	var message string
	var payload []byte
	_ = l.Execute(func(trx *storage.Transaction) error {
		response := c.Invoke(&peerStub{trx: trx, function: function, args: args})
		status = response.Status
		message = response.Message
		payload = response.Payload
		if shim.OK != status {
			return fault.ProcessError(message)
		}
		return nil
	})
	return status, message, payload
}

func TestOperations(t *testing.T) {
	assets, accounts, l := setup(t)
	defer l.Close()

	assert.Equal(t, "asset", assets.Name(), "wrong asset contract name")
	assert.Equal(t, []string{
		"CreateAsset",
		"ReadAsset",
		"GetAllAsset",
		"DeleteAsset",
		"AssetExists",
		"TransferAsset",
		"QueryAssetsByOwner",
		"QueryAssets",
		"GetAssetHistory",
		"InitLedger",
	}, assets.Operations(), "wrong asset operations")

	assert.Equal(t, "account", accounts.Name(), "wrong account contract name")
	assert.Equal(t, []string{
		"CreateAccount",
		"createAccount",
		"ReadAccount",
		"GetAllAccount",
		"AccountExists",
		"DeleteAccount",
		"TransferMoney",
		"QueryAccounts",
		"GetAccountHistory",
		"InitLedger",
	}, accounts.Operations(), "wrong account operations")
}

func TestExecuteUnknownAndArity(t *testing.T) {
	assets, _, l := setup(t)
	defer l.Close()

	_, err := execute(l, assets, "MintAsset", "asset1")
	assert.True(t, fault.IsErrInvalid(err), "wrong unknown function error: %v", err)

	// reflection era helpers are not operations
	_, err = execute(l, assets, "_GetAllResults")
	assert.True(t, fault.IsErrInvalid(err), "wrong helper error: %v", err)

	_, err = execute(l, assets, "ReadAsset")
	assert.True(t, fault.IsErrInvalid(err), "wrong missing argument error: %v", err)

	_, err = execute(l, assets, "TransferAsset", "asset1", "account2", "extra")
	assert.True(t, fault.IsErrInvalid(err), "wrong extra argument error: %v", err)
}

func TestAssetScenario(t *testing.T) {
	assets, _, l := setup(t)
	defer l.Close()

	_, err := execute(l, assets, "InitLedger")
	assert.Nil(t, err, "wrong InitLedger")

	payload, err := execute(l, assets, "AssetExists", "asset1")
	assert.Nil(t, err, "wrong AssetExists")
	assert.Equal(t, "true", string(payload), "wrong presence")

	_, err = execute(l, assets, "TransferAsset", "asset1", "account2")
	assert.Nil(t, err, "wrong TransferAsset")

	payload, err = execute(l, assets, "ReadAsset", "asset1")
	assert.Nil(t, err, "wrong ReadAsset")
	r, err := record.DecodeAsset(payload)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, "account2", r.Owner, "wrong owner")

	payload, err = execute(l, assets, "GetAssetHistory", "asset1")
	assert.Nil(t, err, "wrong GetAssetHistory")
	var history []query.Modification
	assert.Nil(t, json.Unmarshal(payload, &history), "history not JSON")
	assert.Equal(t, 2, len(history), "wrong history length")

	payload, err = execute(l, assets, "QueryAssetsByOwner", "account2")
	assert.Nil(t, err, "wrong QueryAssetsByOwner")
	var owned []query.Result
	assert.Nil(t, json.Unmarshal(payload, &owned), "results not JSON")
	assert.Equal(t, 3, len(owned), "wrong owned count")

	_, err = execute(l, assets, "DeleteAsset", "asset1")
	assert.Nil(t, err, "wrong DeleteAsset")

	payload, err = execute(l, assets, "AssetExists", "asset1")
	assert.Nil(t, err, "wrong AssetExists")
	assert.Equal(t, "false", string(payload), "wrong presence after delete")

	payload, err = execute(l, assets, "GetAllAsset")
	assert.Nil(t, err, "wrong GetAllAsset")
	var all []query.Result
	assert.Nil(t, json.Unmarshal(payload, &all), "results not JSON")
	assert.Equal(t, 5, len(all), "wrong asset count")
}

func TestCreateAssetArguments(t *testing.T) {
	assets, _, l := setup(t)
	defer l.Close()

	_, err := execute(l, assets, "CreateAsset", "asset7", "Moon", "silver", "three", "account1", "75")
	assert.True(t, fault.IsErrInvalid(err), "wrong size error: %v", err)

	_, err = execute(l, assets, "CreateAsset", "asset7", "Moon", "silver", "3", "account1", "")
	assert.True(t, fault.IsErrInvalid(err), "wrong value error: %v", err)

	_, err = execute(l, assets, "CreateAsset", "asset7", "Moon", "silver", "3", "account1", "75")
	assert.Nil(t, err, "wrong CreateAsset")

	payload, err := execute(l, assets, "ReadAsset", "asset7")
	assert.Nil(t, err, "wrong ReadAsset")
	assert.Contains(t, string(payload), `"size":3`, "size not stored as a number")
}

func TestAccountScenario(t *testing.T) {
	_, accounts, l := setup(t)
	defer l.Close()

	_, err := execute(l, accounts, "InitLedger")
	assert.Nil(t, err, "wrong InitLedger")

	_, err = execute(l, accounts, "TransferMoney", "account1", "account2", "500")
	assert.Nil(t, err, "wrong TransferMoney")

	payload, err := execute(l, accounts, "ReadAccount", "account1")
	assert.Nil(t, err, "wrong ReadAccount")
	assert.Equal(t,
		`{"docType":"account","accountID":"account1","bank":"VCB","balance":1500,"owner":"Phan nguyen long"}`,
		string(payload),
		"wrong account1",
	)

	payload, err = execute(l, accounts, "ReadAccount", "account2")
	assert.Nil(t, err, "wrong ReadAccount")
	a, err := record.DecodeAccount(payload)
	assert.Nil(t, err, "wrong decode")
	assert.Equal(t, record.Number(2500), a.Balance, "wrong account2 balance")

	_, err = execute(l, accounts, "createAccount", "account4", "ACB", "12", "Alias")
	assert.Nil(t, err, "wrong createAccount alias")

	payload, err = execute(l, accounts, "AccountExists", "account4")
	assert.Nil(t, err, "wrong AccountExists")
	assert.Equal(t, "true", string(payload), "alias did not create")

	_, err = execute(l, accounts, "CreateAccount", "account5", "ACB", "-1", "Negative")
	assert.True(t, fault.IsErrInvalid(err), "wrong negative balance error: %v", err)

	_, err = execute(l, accounts, "DeleteAccount", "account4")
	assert.Nil(t, err, "wrong DeleteAccount")

	payload, err = execute(l, accounts, "GetAllAccount")
	assert.Nil(t, err, "wrong GetAllAccount")
	var all []query.Result
	assert.Nil(t, json.Unmarshal(payload, &all), "results not JSON")
	assert.Equal(t, 3, len(all), "wrong account count")

	payload, err = execute(l, accounts, "GetAccountHistory", "account1")
	assert.Nil(t, err, "wrong GetAccountHistory")
	var history []query.Modification
	assert.Nil(t, json.Unmarshal(payload, &history), "history not JSON")
	assert.Equal(t, 2, len(history), "wrong history length")

	payload, err = execute(l, accounts, "QueryAccounts", `{"selector":{"docType":"account","bank":"VCB"}}`)
	assert.Nil(t, err, "wrong QueryAccounts")
	assert.Nil(t, json.Unmarshal(payload, &all), "results not JSON")
	assert.Equal(t, 1, len(all), "wrong query count")
}

func TestInvoke(t *testing.T) {
	assets, accounts, l := setup(t)
	defer l.Close()

	status, _, _ := invoke(l, accounts, "InitLedger")
	assert.Equal(t, int32(shim.OK), status, "wrong InitLedger status")

	status, message, _ := invoke(l, accounts, "TransferMoney", "account1", "account1", "10")
	assert.Equal(t, int32(shim.ERROR), status, "wrong self transfer status")
	assert.Equal(t, "SelfTransfer: account account1: cannot transfer to the same account", message, "wrong message")

	status, message, _ = invoke(l, accounts, "TransferMoney", "account1", "account2", "5000")
	assert.Equal(t, int32(shim.ERROR), status, "wrong overdraft status")
	assert.Equal(t, "InsufficientBalance: account account1: balance: 2000  amount: 5000: insufficient balance", message, "wrong message")

	status, message, _ = invoke(l, assets, "ReadAsset", "asset1")
	assert.Equal(t, int32(shim.ERROR), status, "wrong missing asset status")
	assert.Equal(t, "NotFound: asset asset1: does not exist", message, "wrong message")

	status, message, _ = invoke(l, assets, "Burn")
	assert.Equal(t, int32(shim.ERROR), status, "wrong unknown function status")
	assert.Equal(t, `InvalidArgument: unknown function: "Burn"`, message, "wrong message")

	status, _, payload := invoke(l, assets, "AssetExists", "asset1")
	assert.Equal(t, int32(shim.OK), status, "wrong AssetExists status")
	assert.Equal(t, "false", string(payload), "wrong payload")

	err := l.View(func(trx *storage.Transaction) error {
		response := assets.Init(&peerStub{trx: trx})
		assert.Equal(t, int32(shim.OK), response.Status, "wrong Init status")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "AlreadyExists: already exists", contract.Message(fault.ErrAlreadyExists), "wrong classified message")
	assert.Equal(t, "store offline", contract.Message(fault.GenericError("store offline")), "wrong plain message")
}
