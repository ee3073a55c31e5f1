// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/configuration"
	"github.com/bitmark-inc/ledgerd/fault"
)

type ledgerType struct {
	DocType   string `gluamapper:"doc_type"`
	IndexName string `gluamapper:"index_name"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Contract      string            `gluamapper:"contract"`
	TLSDisabled   bool              `gluamapper:"tls_disabled"`
	Count         int               `gluamapper:"count"`
	Asset         ledgerType        `gluamapper:"asset"`
	Levels        map[string]string `gluamapper:"levels"`
}

const source = `
local M = {}

M.data_directory = "."
M.contract = "asset"
M.tls_disabled = true
M.count = 3 * 4

M.asset = {
    doc_type = "asset",
    index_name = "color~" .. "name",
}

M.levels = {
    DEFAULT = "info",
    storage = "debug",
}

return M
`

func TestParseString(t *testing.T) {
	config := testConfiguration{
		Contract: "account",
		Asset: ledgerType{
			IndexName: "default",
		},
	}

	err := configuration.ParseConfigurationString("test.conf", source, &config)
	assert.Nil(t, err, "wrong parse")

	assert.Equal(t, ".", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "asset", config.Contract, "wrong contract")
	assert.True(t, config.TLSDisabled, "wrong tls flag")
	assert.Equal(t, 12, config.Count, "wrong count")
	assert.Equal(t, ledgerType{DocType: "asset", IndexName: "color~name"}, config.Asset, "wrong asset section")
	assert.Equal(t, map[string]string{"DEFAULT": "info", "storage": "debug"}, config.Levels, "wrong levels")
}

func TestParseKeepsDefaults(t *testing.T) {
	config := testConfiguration{
		Contract: "account",
		Count:    7,
	}

	err := configuration.ParseConfigurationString("test.conf", `return { data_directory = "/tmp" }`, &config)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "/tmp", config.DataDirectory, "wrong data directory")
	assert.Equal(t, "account", config.Contract, "default overwritten")
	assert.Equal(t, 7, config.Count, "default overwritten")
}

func TestParseFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "ledgerd.conf")
	err := os.WriteFile(fileName, []byte(`
local M = {}
M.contract = "account"
M.data_directory = arg[0]
return M
`), 0600)
	assert.Nil(t, err, "wrong write")

	config := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &config)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "account", config.Contract, "wrong contract")
	assert.Equal(t, fileName, config.DataDirectory, "arg[0] is not the file name")
}

func TestParseErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationString("test.conf", `return "asset"`, &config)
	assert.NotNil(t, err, "non-table result accepted")

	err = configuration.ParseConfigurationString("test.conf", `return {`, &config)
	assert.NotNil(t, err, "syntax error accepted")

	err = configuration.ParseConfigurationString("test.conf", `return {}`, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-pointer accepted")

	s := "string"
	err = configuration.ParseConfigurationString("test.conf", `return {}`, &s)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "non-struct accepted")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config)
	assert.NotNil(t, err, "missing file accepted")
}
