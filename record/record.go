// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the JSON documents kept in the world state
//
// records are stored as JSON so that the state database can run
// selector queries over them; the docType field tags the kind of
// document for those queries.
package record

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Asset - a record of the asset ledger
type Asset struct {
	DocType        string `json:"docType"`
	Name           string `json:"name"`
	AssetID        string `json:"assetID"`
	Color          string `json:"color"`
	Size           Number `json:"size"`
	Owner          string `json:"owner"`
	AppraisedValue Number `json:"appraisedValue"`
}

// Account - a record of the account ledger
type Account struct {
	DocType   string `json:"docType"`
	AccountID string `json:"accountID"`
	Bank      string `json:"bank"`
	Balance   Number `json:"balance"`
	Owner     string `json:"owner"`
}

// Encode - serialise a record for the world state
func Encode(r interface{}) ([]byte, error) {
	return json.Marshal(r)
}

// DecodeAsset - deserialise an asset record
func DecodeAsset(data []byte) (*Asset, error) {
	var asset Asset
	if err := decode(data, &asset); nil != err {
		return nil, err
	}
	return &asset, nil
}

// DecodeAccount - deserialise an account record
func DecodeAccount(data []byte) (*Account, error) {
	var account Account
	if err := decode(data, &account); nil != err {
		return nil, err
	}
	return &account, nil
}

func decode(data []byte, r interface{}) error {
	if err := json.Unmarshal(data, r); nil != err {
		return fmt.Errorf("%w: %s", fault.ErrDecodeRecord, err)
	}
	return nil
}

// Parse - check that stored bytes hold a JSON document
//
// the document is returned unchanged so that it can be re-encoded as
// part of a larger result without losing any fields
func Parse(data []byte) (json.RawMessage, error) {
	if !json.Valid(data) {
		return nil, fault.ErrDecodeRecord
	}
	return json.RawMessage(data), nil
}
