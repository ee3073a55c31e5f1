// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/contract"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// the chaincode for the configured contract
func newChaincode(options *Configuration) (*contract.Chaincode, error) {
	switch options.Contract {
	case contract.AssetContractName:
		return contract.NewAssetChaincode(asset.New(options.Asset)), nil
	case contract.AccountContractName:
		return contract.NewAccountChaincode(account.New(options.Account)), nil
	default:
		return nil, fault.ErrInvalidContract
	}
}

// run the chaincode until the peer connection ends
//
// the result is sent to the channel
func runChaincode(log *logger.L, cc *contract.Chaincode, options ChaincodeType, done chan<- error) {
	switch options.Mode {

	case modeServer:
		tls, err := tlsProperties(options)
		if nil != err {
			done <- err
			return
		}

		server := &shim.ChaincodeServer{
			CCID:     options.ID,
			Address:  options.Address,
			CC:       cc,
			TLSProps: tls,
		}

		log.Infof("chaincode server: %s  listening on: %s  tls: %t", options.ID, options.Address, !tls.Disabled)
		done <- server.Start()

	default:
		log.Infof("chaincode: %s  connecting to peer", cc.Name())
		done <- shim.Start(cc)
	}
}

// load the server key material, TLS is on unless disabled
func tlsProperties(options ChaincodeType) (shim.TLSProperties, error) {
	if options.TLSDisabled {
		return shim.TLSProperties{Disabled: true}, nil
	}

	key, err := os.ReadFile(options.PrivateKey)
	if nil != err {
		return shim.TLSProperties{}, err
	}
	certificate, err := os.ReadFile(options.Certificate)
	if nil != err {
		return shim.TLSProperties{}, err
	}

	var clientCA []byte
	if "" != options.ClientCACertificate {
		clientCA, err = os.ReadFile(options.ClientCACertificate)
		if nil != err {
			return shim.TLSProperties{}, err
		}
	}

	return shim.TLSProperties{
		Disabled:      false,
		Key:           key,
		Cert:          certificate,
		ClientCACerts: clientCA,
	}, nil
}
