// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/logger"
)

// pool prefixes
const (
	stateDB      = 'S'
	historyDB    = 'H'
	nextSeqDB    = 'N'
	txCounterKey = 'X'
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// Ledger - a local world state
type Ledger struct {
	sync.Mutex
	log *logger.L
	db  *leveldb.DB
}

// Open - open or create a world state database in a directory
func Open(name string, readOnly bool) (*Ledger, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, name, readOnly)
}

// OpenMemory - create an empty world state that is never persisted
func OpenMemory() (*Ledger, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", false)
}

func setup(db *leveldb.DB, name string, readOnly bool) (*Ledger, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch {
	case version > currentDBVersion:
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		db.Close()
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)

	case 0 == version && !readOnly:
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %s  version: 0x%x", name, currentDBVersion)

	return &Ledger{
		log: log,
		db:  db,
	}, nil
}

// Close - close the database
func (l *Ledger) Close() error {
	l.Lock()
	defer l.Unlock()

	if nil == l.db {
		return fault.ErrNotInitialised
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// Execute - run one transaction
//
// all writes made through the transaction are committed together if
// the function succeeds and discarded if it fails
func (l *Ledger) Execute(f func(*Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	if nil == l.db {
		return fault.ErrNotInitialised
	}

	trx, err := l.begin()
	if nil != err {
		return err
	}
	defer trx.cache.Clear()

	err = f(trx)
	if nil != err {
		l.log.Debugf("tx: %s  aborted: %s", trx.txID, err)
		return err
	}
	return trx.commit()
}

// View - run a transaction whose writes are always discarded
func (l *Ledger) View(f func(*Transaction) error) error {
	l.Lock()
	defer l.Unlock()

	if nil == l.db {
		return fault.ErrNotInitialised
	}

	trx, err := l.begin()
	if nil != err {
		return err
	}
	defer trx.cache.Clear()

	return f(trx)
}

// return:
//   version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
