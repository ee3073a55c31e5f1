// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// prepend the prefix onto the key
func prefixKey(prefix byte, key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = prefix
	return append(prefixedKey, key...)
}

// S ++ key
func stateKey(key string) []byte {
	return prefixKey(stateDB, []byte(key))
}

// N ++ key
func nextSeqKey(key string) []byte {
	return prefixKey(nextSeqDB, []byte(key))
}

// H ++ key ++ 0x00
func historyPrefix(key string) []byte {
	return append(prefixKey(historyDB, []byte(key)), 0x00)
}

// H ++ key ++ 0x00 ++ sequence
func historyKey(key string, seq uint64) []byte {
	k := historyPrefix(key)
	n := len(k)
	k = append(k, make([]byte, 8)...)
	binary.BigEndian.PutUint64(k[n:], seq)
	return k
}

// read a value, nil if the key does not exist
//
// the result is a copy and can be retained
func get(db *leveldb.DB, key []byte) ([]byte, error) {
	value, err := db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	} else if nil != err {
		return nil, err
	}
	return value, nil
}

// read a big endian uint64
//
// second result is false if the record was not found
func getN(db *leveldb.DB, key []byte) (uint64, bool, error) {
	buffer, err := get(db, key)
	if nil != err {
		return 0, false, err
	}
	if 8 > len(buffer) {
		return 0, false, nil
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

func putN(batch *leveldb.Batch, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	batch.Put(key, buffer)
}

// run a function on all elements whose key starts with a prefix
//
// the prefix is stripped from keys passed to the function
func mapPrefix(db *leveldb.DB, prefix []byte, f func(key []byte, value []byte) error) error {
	iter := db.NewIterator(ldb_util.BytesPrefix(prefix), nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(prefix)) // strip the prefix
		copy(dataKey, key[len(prefix):])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}
