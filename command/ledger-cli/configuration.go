// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/ledgerd/account"
	"github.com/bitmark-inc/ledgerd/asset"
	lua "github.com/bitmark-inc/ledgerd/configuration"
	"github.com/bitmark-inc/ledgerd/util"
	"github.com/bitmark-inc/logger"
)

const (
	defaultLogDirectory = "log"
	defaultLogFile      = "ledger-cli.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024
)

// settings of the local tool, all optional in the file
type configuration struct {
	Database string                `gluamapper:"database" json:"database"`
	Asset    asset.Configuration   `gluamapper:"asset" json:"asset"`
	Account  account.Configuration `gluamapper:"account" json:"account"`
	Logging  logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// the database flag overrides the file, logs go below the database
func getConfiguration(database string, fileName string) (*configuration, error) {

	config := &configuration{
		Database: database,
		Asset:    asset.DefaultConfiguration(),
		Account:  account.DefaultConfiguration(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	if "" != fileName {
		fileName, err = filepath.Abs(filepath.Clean(fileName))
		if nil != err {
			return nil, err
		}
		if err := lua.ParseConfigurationFile(fileName, config); nil != err {
			return nil, err
		}
		baseDirectory = filepath.Dir(fileName)

		if "" != database {
			config.Database = database
		}
	}

	if "" == config.Database {
		return nil, errors.New("database directory is required")
	}
	config.Database = util.EnsureAbsolute(baseDirectory, config.Database)

	config.Logging.Directory, err = util.EnsureDirectory(config.Database, config.Logging.Directory)
	if nil != err {
		return nil, err
	}

	return config, nil
}
