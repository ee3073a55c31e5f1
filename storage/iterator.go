// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"

	"github.com/bitmark-inc/ledgerd/fault"
)

// results are collected when the query runs so the iterators hold no
// database resources
type stateIterator struct {
	results []*queryresult.KV
	closed  bool
}

func (i *stateIterator) HasNext() bool {
	return !i.closed && 0 < len(i.results)
}

func (i *stateIterator) Next() (*queryresult.KV, error) {
	if !i.HasNext() {
		return nil, fault.ErrIteratorExhausted
	}
	kv := i.results[0]
	i.results = i.results[1:]
	return kv, nil
}

func (i *stateIterator) Close() error {
	i.closed = true
	i.results = nil
	return nil
}

type historyIterator struct {
	results []*queryresult.KeyModification
	closed  bool
}

func (i *historyIterator) HasNext() bool {
	return !i.closed && 0 < len(i.results)
}

func (i *historyIterator) Next() (*queryresult.KeyModification, error) {
	if !i.HasNext() {
		return nil, fault.ErrIteratorExhausted
	}
	km := i.results[0]
	i.results = i.results[1:]
	return km, nil
}

func (i *historyIterator) Close() error {
	i.closed = true
	i.results = nil
	return nil
}
