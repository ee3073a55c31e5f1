// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	"github.com/bitmark-inc/ledgerd/configuration"
	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultContract      = "asset"
	defaultChaincodeMode = modePeer

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "ledger.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "ledgerd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// chaincode modes
const (
	modePeer   = "peer"   // launched by the peer
	modeServer = "server" // external chaincode service, peer connects in
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// ChaincodeType - how the chaincode connects to the peer
type ChaincodeType struct {
	Mode                string `gluamapper:"mode" json:"mode"`
	ID                  string `gluamapper:"id" json:"id"`
	Address             string `gluamapper:"address" json:"address"`
	TLSDisabled         bool   `gluamapper:"tls_disabled" json:"tls_disabled"`
	Certificate         string `gluamapper:"certificate" json:"certificate"`
	PrivateKey          string `gluamapper:"private_key" json:"private_key"`
	ClientCACertificate string `gluamapper:"client_ca_certificate" json:"client_ca_certificate"`
}

// DatabaseType - local world state used by the local commands
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                `gluamapper:"pidfile" json:"pidfile"`
	Contract      string                `gluamapper:"contract" json:"contract"`
	Chaincode     ChaincodeType         `gluamapper:"chaincode" json:"chaincode"`
	Asset         asset.Configuration   `gluamapper:"asset" json:"asset"`
	Account       account.Configuration `gluamapper:"account" json:"account"`
	Database      DatabaseType          `gluamapper:"database" json:"database"`
	Logging       logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Contract:      defaultContract,

		Chaincode: ChaincodeType{
			Mode: defaultChaincodeMode,
		},

		Asset:   asset.DefaultConfiguration(),
		Account: account.DefaultConfiguration(),

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Contract = strings.ToLower(options.Contract)
	switch options.Contract {
	case asset.DefaultDocType, account.DefaultDocType:
	default:
		return nil, fmt.Errorf("contract: %q: %w", options.Contract, fault.ErrInvalidContract)
	}

	options.Chaincode.Mode = strings.ToLower(options.Chaincode.Mode)
	switch options.Chaincode.Mode {
	case modePeer:
	case modeServer:
		if "" == options.Chaincode.ID {
			return nil, fault.ErrMissingChaincodeID
		}
		if "" == options.Chaincode.Address {
			return nil, fault.ErrMissingChaincodeListen
		}
		options.Chaincode.Address, err = util.CanonicalIPandPort(options.Chaincode.Address)
		if nil != err {
			return nil, fmt.Errorf("chaincode address: %w", err)
		}
	default:
		return nil, fmt.Errorf("chaincode mode: %q: %w", options.Chaincode.Mode, fault.ErrInvalidChaincodeMode)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.CheckDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.Chaincode.Certificate,
		&options.Chaincode.PrivateKey,
		&options.Chaincode.ClientCACertificate,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		if !util.IsPlainName(*f[0]) {
			return nil, fmt.Errorf("files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[1] = util.EnsureAbsolute(options.DataDirectory, *f[1])
			*f[0] = util.EnsureAbsolute(*f[1], *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = util.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
