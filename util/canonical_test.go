// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/util"
)

// Test IP address detection
func TestCanonical(t *testing.T) {

	testData := []struct {
		in  string
		out string
	}{
		{"127.0.0.1:1234", "127.0.0.1:1234"},
		{"127.0.0.1:1", "127.0.0.1:1"},
		{" 127.0.0.1:1 ", "127.0.0.1:1"},
		{"127.0.0.1:65535", "127.0.0.1:65535"},
		{"0.0.0.0:9999", "0.0.0.0:9999"},
		{"[::1]:1234", "[::1]:1234"},
		{"[::]:1234", "[::]:1234"},
		{"[0:0::0:0]:1234", "[::]:1234"},
		{"[0:0:0:0::1]:1234", "[::1]:1234"},
	}

	for i, d := range testData {
		c, err := util.CanonicalIPandPort(d.in)
		assert.Nil(t, err, "%d: failed on: %q", i, d.in)
		assert.Equal(t, d.out, c, "%d: wrong conversion of: %q", i, d.in)
	}
}

// Test IP address
func TestCanonicalIP(t *testing.T) {

	testData := []string{
		"127.1:1234",
		"256.0.0.0:1234",
		"0.256.0.0:1234",
		"0.0.256.0:1234",
		"0.0.0.256:1234",
		"0:0:1234",
		"[]:1234",
		"[as34::]:1234",
		"[1ffff::]:1234",
		"*:1234",
		"peer0.org1:7052",
		"no-port",
	}

	for i, d := range testData {
		_, err := util.CanonicalIPandPort(d)
		assert.Equal(t, fault.ErrInvalidIPAddress, err, "%d: wrong error for: %q", i, d)
	}
}

// Test port range
func TestCanonicalPort(t *testing.T) {

	testData := []string{
		"127.0.0.1:0",
		"127.0.0.1:65536",
		"127.0.0.1:-1",
		"127.0.0.1:http",
	}

	for i, d := range testData {
		_, err := util.CanonicalIPandPort(d)
		assert.Equal(t, fault.ErrInvalidPortNumber, err, "%d: wrong error for: %q", i, d)
	}
}
