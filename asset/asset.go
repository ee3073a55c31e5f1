// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
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
	DefaultDocType   = "asset"
	DefaultIndexName = "color~name"
)

// Configuration - asset ledger settings
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

// Assets - the asset ledger service
type Assets struct {
	log     *logger.L
	docType string
	index   *index.Maintainer
	query   *query.Aggregator
}

// New - create the service, blank settings take their defaults
func New(configuration Configuration) *Assets {
	if "" == configuration.DocType {
		configuration.DocType = DefaultDocType
	}
	if "" == configuration.IndexName {
		configuration.IndexName = DefaultIndexName
	}

	log := logger.New("asset")
	log.Infof("docType: %q  index: %q", configuration.DocType, configuration.IndexName)

	return &Assets{
		log:     log,
		docType: configuration.DocType,
		index:   index.New(configuration.IndexName),
		query:   query.New(log),
	}
}

// CreateAsset - store a new asset and its color index entry
func (a *Assets) CreateAsset(stub ledger.Stub, assetID string, name string, color string, size record.Number, owner string, appraisedValue record.Number) error {
	if "" == assetID {
		return fault.ErrEmptyIdentifier
	}

	exists, err := a.AssetExists(stub, assetID)
	if nil != err {
		return err
	}
	if exists {
		return fmt.Errorf("asset %s: %w", assetID, fault.ErrAlreadyExists)
	}

	indexKey, err := a.index.Key(stub, color, assetID)
	if nil != err {
		return err
	}

	asset := &record.Asset{
		DocType:        a.docType,
		Name:           name,
		AssetID:        assetID,
		Color:          color,
		Size:           size,
		Owner:          owner,
		AppraisedValue: appraisedValue,
	}
	packed, err := record.Encode(asset)
	if nil != err {
		return err
	}

	err = stub.PutState(assetID, packed)
	if nil != err {
		return fmt.Errorf("asset %s: put: %w", assetID, err)
	}
	err = a.index.Add(stub, indexKey)
	if nil != err {
		return fmt.Errorf("asset %s: index: %w", assetID, err)
	}

	a.log.Infof("created: %s  owner: %s", assetID, owner)
	return nil
}

// ReadAsset - the stored bytes of an asset
func (a *Assets) ReadAsset(stub ledger.Stub, assetID string) ([]byte, error) {
	packed, err := stub.GetState(assetID)
	if nil != err {
		return nil, fmt.Errorf("asset %s: get: %w", assetID, err)
	}
	if 0 == len(packed) {
		return nil, fmt.Errorf("asset %s: %w", assetID, fault.ErrNotFound)
	}
	return packed, nil
}

// AssetExists - true if an asset is stored under the id
func (a *Assets) AssetExists(stub ledger.Stub, assetID string) (bool, error) {
	packed, err := stub.GetState(assetID)
	if nil != err {
		return false, fmt.Errorf("asset %s: get: %w", assetID, err)
	}
	return 0 < len(packed), nil
}

// DeleteAsset - remove an asset and its color index entry
func (a *Assets) DeleteAsset(stub ledger.Stub, assetID string) error {
	if "" == assetID {
		return fault.ErrEmptyIdentifier
	}

	packed, err := a.ReadAsset(stub, assetID)
	if nil != err {
		return err
	}
	asset, err := record.DecodeAsset(packed)
	if nil != err {
		return fmt.Errorf("asset %s: %w", assetID, err)
	}

	// the entry written at create time holds the stored color
	indexKey, err := a.index.Key(stub, asset.Color, asset.AssetID)
	if nil != err {
		return err
	}

	err = stub.DelState(assetID)
	if nil != err {
		return fmt.Errorf("asset %s: delete: %w", assetID, err)
	}
	err = a.index.Remove(stub, indexKey)
	if nil != err {
		return fmt.Errorf("asset %s: index: %w", assetID, err)
	}

	a.log.Infof("deleted: %s", assetID)
	return nil
}

// TransferAsset - change the owner, nothing else
func (a *Assets) TransferAsset(stub ledger.Stub, assetID string, newOwner string) error {
	packed, err := a.ReadAsset(stub, assetID)
	if nil != err {
		return err
	}
	asset, err := record.DecodeAsset(packed)
	if nil != err {
		return fmt.Errorf("asset %s: %w", assetID, err)
	}

	previousOwner := asset.Owner
	asset.Owner = newOwner

	packed, err = record.Encode(asset)
	if nil != err {
		return err
	}
	err = stub.PutState(assetID, packed)
	if nil != err {
		return fmt.Errorf("asset %s: put: %w", assetID, err)
	}

	a.log.Infof("transferred: %s  from: %s  to: %s", assetID, previousOwner, newOwner)
	return nil
}

// GetAllAsset - every asset in the world state
func (a *Assets) GetAllAsset(stub ledger.Stub) ([]query.Result, error) {
	return a.selectAssets(stub, nil)
}

// QueryAssetsByOwner - every asset held by one owner
func (a *Assets) QueryAssetsByOwner(stub ledger.Stub, owner string) ([]query.Result, error) {
	return a.selectAssets(stub, query.Predicates{"owner": owner})
}

// QueryAssets - run a caller supplied selector unchanged
func (a *Assets) QueryAssets(stub ledger.Stub, selector string) ([]query.Result, error) {
	results, err := a.query.Run(stub, selector)
	if nil != err {
		return nil, fmt.Errorf("asset query: %w", err)
	}
	return results, nil
}

// GetAssetHistory - every committed version of an asset
func (a *Assets) GetAssetHistory(stub ledger.Stub, assetID string) ([]query.Modification, error) {
	results, err := a.query.History(stub, assetID)
	if nil != err {
		return nil, fmt.Errorf("asset %s: history: %w", assetID, err)
	}
	return results, nil
}

func (a *Assets) selectAssets(stub ledger.Stub, predicates query.Predicates) ([]query.Result, error) {
	selector, err := query.Selector(a.docType, predicates)
	if nil != err {
		return nil, err
	}
	return a.QueryAssets(stub, selector)
}
