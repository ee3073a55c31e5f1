// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/record"
)

// AssetContractName - name of the asset chaincode
const AssetContractName = "asset"

// NewAssetChaincode - chaincode for the asset ledger
func NewAssetChaincode(assets *asset.Assets) *Chaincode {
	return newChaincode(AssetContractName, []Operation{
		{
			Name:  "CreateAsset",
			Arity: 6,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				size, err := record.ParseNumber(args[3])
				if nil != err {
					return nil, fmt.Errorf("size %q: %w", args[3], err)
				}
				appraisedValue, err := record.ParseNumber(args[5])
				if nil != err {
					return nil, fmt.Errorf("appraisedValue %q: %w", args[5], err)
				}
				return nil, assets.CreateAsset(stub, args[0], args[1], args[2], size, args[4], appraisedValue)
			},
		},
		{
			Name:  "ReadAsset",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return assets.ReadAsset(stub, args[0])
			},
		},
		{
			Name:  "GetAllAsset",
			Arity: 0,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := assets.GetAllAsset(stub)
				if nil != err {
					return nil, err
				}
				return encode(results)
			},
		},
		{
			Name:  "DeleteAsset",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return nil, assets.DeleteAsset(stub, args[0])
			},
		},
		{
			Name:  "AssetExists",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				exists, err := assets.AssetExists(stub, args[0])
				if nil != err {
					return nil, err
				}
				return boolean(exists), nil
			},
		},
		{
			Name:  "TransferAsset",
			Arity: 2,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				return nil, assets.TransferAsset(stub, args[0], args[1])
			},
		},
		{
			Name:  "QueryAssetsByOwner",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := assets.QueryAssetsByOwner(stub, args[0])
				if nil != err {
					return nil, err
				}
				return encode(results)
			},
		},
		{
			Name:  "QueryAssets",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := assets.QueryAssets(stub, args[0])
				if nil != err {
					return nil, err
				}
				return encode(results)
			},
		},
		{
			Name:  "GetAssetHistory",
			Arity: 1,
			Call: func(stub ledger.Stub, args []string) ([]byte, error) {
				results, err := assets.GetAssetHistory(stub, args[0])
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
				return nil, assets.InitLedger(stub)
			},
		},
	})
}
