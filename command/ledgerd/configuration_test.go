// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ledgerd/fault"
)

func writeConfiguration(t *testing.T, source string) string {
	dir := t.TempDir()
	file := filepath.Join(dir, "ledgerd.conf")
	require.NoError(t, os.WriteFile(file, []byte(source), 0600), "write configuration")
	return file
}

func TestGetConfigurationSample(t *testing.T) {
	source, err := os.ReadFile("ledgerd.conf.sample")
	require.NoError(t, err, "read sample")

	file := writeConfiguration(t, string(source))
	dir := filepath.Dir(file)

	options, err := getConfiguration(file)
	require.NoError(t, err, "sample configuration")

	assert.Equal(t, "asset", options.Contract, "contract")
	assert.Equal(t, modePeer, options.Chaincode.Mode, "mode")
	assert.Equal(t, "color~name", options.Asset.IndexName, "asset index")
	assert.Equal(t, filepath.Join(dir, "data"), options.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "ledger.leveldb"), options.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, "info", options.Logging.Levels["DEFAULT"], "log level")
	assert.DirExists(t, options.Logging.Directory, "log directory created")
}

func TestGetConfigurationServer(t *testing.T) {
	file := writeConfiguration(t, `
return {
    data_directory = ".",
    contract = "Account",
    chaincode = {
        mode = "SERVER",
        id = "account:1234",
        address = "127.0.0.1:9999",
        tls_disabled = true,
        certificate = "server.crt",
    },
}
`)

	options, err := getConfiguration(file)
	require.NoError(t, err, "server configuration")

	assert.Equal(t, "account", options.Contract, "contract")
	assert.Equal(t, modeServer, options.Chaincode.Mode, "mode")
	assert.Equal(t, "127.0.0.1:9999", options.Chaincode.Address, "address")
	assert.Equal(t, filepath.Join(filepath.Dir(file), "server.crt"), options.Chaincode.Certificate, "certificate")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		source  string
		classed func(error) bool
	}{
		{`return { data_directory = ".", contract = "bond" }`, fault.IsErrInvalid},
		{`return { data_directory = ".", chaincode = { mode = "relay" } }`, fault.IsErrInvalid},
		{`return { data_directory = ".", chaincode = { mode = "server", address = "127.0.0.1:9999" } }`, fault.IsErrInvalid},
		{`return { data_directory = ".", chaincode = { mode = "server", id = "x" } }`, fault.IsErrInvalid},
		{`return { data_directory = ".", chaincode = { mode = "server", id = "x", address = "nowhere:9999" } }`, fault.IsErrInvalid},
		{`return { data_directory = "" }`, nil},
		{`return { data_directory = ".", database = { name = "a/b" } }`, nil},
	}

	for i, item := range items {
		_, err := getConfiguration(writeConfiguration(t, item.source))
		require.Error(t, err, "%d: expected an error", i)
		if nil != item.classed {
			assert.True(t, item.classed(err), "%d: wrong class: %v", i, err)
		}
	}
}
