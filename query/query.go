// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query - rich queries and history
//
// drains the world state iterators into result lists; every value is
// kept as a JSON document when it parses and as plain text otherwise,
// so malformed documents still show up in the results.
//
// results come in the order the state database delivers them, they are
// never sorted here
package query

import (
	"encoding/json"
	"time"

	"github.com/golang/protobuf/ptypes"
	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/ledgerd/record"
	"github.com/bitmark-inc/logger"
)

// Result - current state of one key
type Result struct {
	Key    string      `json:"Key"`
	Record interface{} `json:"Record"`
}

// Modification - one historical version of a key
type Modification struct {
	TxId      string      `json:"TxId"`
	Timestamp time.Time   `json:"Timestamp"`
	Value     interface{} `json:"Value"`
}

// Aggregator - collects iterator output
type Aggregator struct {
	log *logger.L
}

// New - create an aggregator logging to the given channel
func New(log *logger.L) *Aggregator {
	return &Aggregator{
		log: log,
	}
}

// Run - execute a selector query and collect all results
func (a *Aggregator) Run(stub ledger.Stub, query string) ([]Result, error) {
	a.log.Debugf("query: %s", query)

	iter, err := stub.GetQueryResult(query)
	if nil != err {
		return nil, err
	}
	return a.Drain(iter)
}

// History - collect all versions of a key
func (a *Aggregator) History(stub ledger.Stub, key string) ([]Modification, error) {
	a.log.Debugf("history: %q", key)

	iter, err := stub.GetHistoryForKey(key)
	if nil != err {
		return nil, err
	}
	return a.DrainHistory(iter)
}

// Drain - read a state iterator to the end and close it
//
// entries without a value are skipped
func (a *Aggregator) Drain(iter shim.StateQueryIteratorInterface) ([]Result, error) {
	defer a.close(iter)

	results := make([]Result, 0)
	for iter.HasNext() {
		kv, err := iter.Next()
		if nil != err {
			return nil, err
		}
		if nil == kv || 0 == len(kv.Value) {
			continue
		}
		results = append(results, Result{
			Key:    kv.Key,
			Record: a.value(kv.Key, kv.Value),
		})
	}
	return results, nil
}

// DrainHistory - read a history iterator to the end and close it
//
// entries without a value (i.e. deletions) are skipped
func (a *Aggregator) DrainHistory(iter shim.HistoryQueryIteratorInterface) ([]Modification, error) {
	defer a.close(iter)

	results := make([]Modification, 0)
	for iter.HasNext() {
		km, err := iter.Next()
		if nil != err {
			return nil, err
		}
		if nil == km || 0 == len(km.Value) {
			continue
		}

		timestamp, err := ptypes.Timestamp(km.Timestamp)
		if nil != err {
			a.log.Warnf("tx: %s  invalid timestamp: %s", km.TxId, err)
			timestamp = time.Time{}
		}

		results = append(results, Modification{
			TxId:      km.TxId,
			Timestamp: timestamp.UTC(),
			Value:     a.value(km.TxId, km.Value),
		})
	}
	return results, nil
}

// parsed JSON document or the raw text
func (a *Aggregator) value(tag string, data []byte) interface{} {
	document, err := record.Parse(data)
	if nil != err {
		a.log.Warnf("%q: keeping raw text: %s", tag, err)
		return string(data)
	}
	return document
}

func (a *Aggregator) close(iter shim.CommonIteratorInterface) {
	if err := iter.Close(); nil != err {
		a.log.Warnf("iterator close error: %s", err)
	}
}

// Predicates - field equality conditions of a selector
type Predicates map[string]string

// Selector - JSON selector matching a document type and all predicates
func Selector(docType string, predicates Predicates) (string, error) {
	fields := make(map[string]string, len(predicates)+1)
	for k, v := range predicates {
		fields[k] = v
	}
	fields["docType"] = docType

	q := struct {
		Selector map[string]string `json:"selector"`
	}{
		Selector: fields,
	}
	b, err := json.Marshal(q)
	if nil != err {
		return "", err
	}
	return string(b), nil
}
