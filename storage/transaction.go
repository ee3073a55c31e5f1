// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/golang/protobuf/ptypes"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/ledger"
	"github.com/bitmark-inc/logger"
)

// Transaction - world state access for one transaction
//
// reads of state see the transaction's own writes; queries and history
// only see committed data
type Transaction struct {
	log       *logger.L
	db        *leveldb.DB
	txNumber  uint64
	txID      string
	timestamp time.Time
	batch     *leveldb.Batch
	cache     Cache
	modified  []string
}

// a transaction is a complete ledger stub
var _ ledger.Stub = (*Transaction)(nil)

// start a transaction with the next tx number
func (l *Ledger) begin() (*Transaction, error) {
	last, _, err := getN(l.db, []byte{txCounterKey})
	if nil != err {
		return nil, err
	}

	txNumber := last + 1
	timestamp := time.Now().UTC()

	buffer := make([]byte, 16)
	binary.BigEndian.PutUint64(buffer[:8], txNumber)
	binary.BigEndian.PutUint64(buffer[8:], uint64(timestamp.UnixNano()))
	digest := sha256.Sum256(buffer)

	return &Transaction{
		log:       l.log,
		db:        l.db,
		txNumber:  txNumber,
		txID:      hex.EncodeToString(digest[:]),
		timestamp: timestamp,
		batch:     new(leveldb.Batch),
		cache:     newCache(),
	}, nil
}

// GetTxID - the id of this transaction
func (t *Transaction) GetTxID() string {
	return t.txID
}

// Timestamp - the time this transaction started
func (t *Transaction) Timestamp() time.Time {
	return t.timestamp
}

// GetState - current value of a key, nil if it does not exist
func (t *Transaction) GetState(key string) ([]byte, error) {
	if "" == key {
		return nil, fault.ErrEmptyKey
	}

	op, value, found := t.cache.Get(key)
	if found {
		if dbDelete == op {
			return nil, nil
		}
		return value, nil
	}
	return get(t.db, stateKey(key))
}

// PutState - write a value
func (t *Transaction) PutState(key string, value []byte) error {
	if "" == key {
		return fault.ErrEmptyKey
	}

	v := make([]byte, len(value))
	copy(v, value)

	t.batch.Put(stateKey(key), v)
	t.cache.Set(dbPut, key, v)
	t.touch(key)
	return nil
}

// DelState - remove a key
func (t *Transaction) DelState(key string) error {
	if "" == key {
		return fault.ErrEmptyKey
	}

	t.batch.Delete(stateKey(key))
	t.cache.Set(dbDelete, key, nil)
	t.touch(key)
	return nil
}

// CreateCompositeKey - join an object type and attributes into one key
func (t *Transaction) CreateCompositeKey(objectType string, attributes []string) (string, error) {
	return createCompositeKey(objectType, attributes)
}

// GetQueryResult - run an equality selector over the committed state
func (t *Transaction) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	s, err := parseSelector(query)
	if nil != err {
		return nil, err
	}

	results := make([]*queryresult.KV, 0)
	err = mapPrefix(t.db, []byte{stateDB}, func(key []byte, value []byte) error {
		if 0 < len(key) && compositeKeyNamespace == key[0] {
			return nil
		}
		if s.matches(value) {
			results = append(results, &queryresult.KV{
				Key:   string(key),
				Value: value,
			})
		}
		return nil
	})
	if nil != err {
		return nil, err
	}

	t.log.Debugf("tx: %s  query matched: %d", t.txID, len(results))
	return &stateIterator{results: results}, nil
}

// GetHistoryForKey - committed modifications of a key in commit order
func (t *Transaction) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	if "" == key {
		return nil, fault.ErrEmptyKey
	}

	results := make([]*queryresult.KeyModification, 0)
	err := mapPrefix(t.db, historyPrefix(key), func(seq []byte, value []byte) error {

		// longer keys that share this prefix
		if 8 != len(seq) {
			return nil
		}

		km := &queryresult.KeyModification{}
		err := proto.Unmarshal(value, km)
		if nil != err {
			return fmt.Errorf("history of %q: %s", key, err)
		}
		results = append(results, km)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return &historyIterator{results: results}, nil
}

// remember first modification of each key
func (t *Transaction) touch(key string) {
	for _, k := range t.modified {
		if k == key {
			return
		}
	}
	t.modified = append(t.modified, key)
}

// write state, history and tx number as a single batch
func (t *Transaction) commit() error {
	ts, err := ptypes.TimestampProto(t.timestamp)
	if nil != err {
		return err
	}

	for _, key := range t.modified {
		op, value, _ := t.cache.Get(key)

		seqKey := nextSeqKey(key)
		seq, _, err := getN(t.db, seqKey)
		if nil != err {
			return err
		}

		km := &queryresult.KeyModification{
			TxId:      t.txID,
			Value:     value,
			Timestamp: ts,
			IsDelete:  dbDelete == op,
		}
		packed, err := proto.Marshal(km)
		if nil != err {
			return err
		}

		t.batch.Put(historyKey(key, seq), packed)
		putN(t.batch, seqKey, seq+1)
	}
	putN(t.batch, []byte{txCounterKey}, t.txNumber)

	err = t.db.Write(t.batch, nil)
	if nil != err {
		t.log.Errorf("tx: %s  commit error: %s", t.txID, err)
		return err
	}

	t.log.Debugf("tx: %s  committed keys: %d", t.txID, len(t.modified))
	return nil
}
