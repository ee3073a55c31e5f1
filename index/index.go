// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - secondary composite index entries
//
// an index entry is a composite key built from the index name and an
// ordered list of attribute values, e.g. for "color~name":
//
//   0x00 ⧺ color~name ⧺ 0x00 ⧺ blue ⧺ 0x00 ⧺ asset1 ⧺ 0x00
//
// only the key carries information; the value is a single null byte
// since an empty value would delete the key
//
// the key is built with Key before any write so that a failure leaves
// the world state untouched
package index

import (
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
)

// the stored value of every index entry
var sentinel = []byte{0x00}

// Maintainer - builds, writes and removes entries of one index
type Maintainer struct {
	name string
}

// New - maintainer for a named index
func New(name string) *Maintainer {
	return &Maintainer{
		name: name,
	}
}

// Name - the index name
func (m *Maintainer) Name() string {
	return m.name
}

// Key - composite key for the attribute values
func (m *Maintainer) Key(stub ledger.Stub, values ...string) (string, error) {
	key, err := stub.CreateCompositeKey(m.name, values)
	if nil != err {
		return "", fmt.Errorf("%w: %s: %s", fault.ErrCompositeKey, m.name, err)
	}
	if "" == key {
		return "", fmt.Errorf("%w: %s", fault.ErrCompositeKey, m.name)
	}
	return key, nil
}

// Add - write the index entry for a key obtained from Key
func (m *Maintainer) Add(stub ledger.Stub, key string) error {
	return stub.PutState(key, sentinel)
}

// Remove - delete the index entry for a key obtained from Key
func (m *Maintainer) Remove(stub ledger.Stub, key string) error {
	return stub.DelState(key)
}
