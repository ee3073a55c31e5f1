// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/ledgerd/fault"
	"github.com/bitmark-inc/ledgerd/fixtures"
	"github.com/bitmark-inc/ledgerd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// configure for testing
func setup(t *testing.T) *storage.Ledger {
	l, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return l
}

// post test cleanup
func teardown(l *storage.Ledger) {
	l.Close()
}

func TestExecuteCommits(t *testing.T) {
	l := setup(t)
	defer teardown(l)

	err := l.Execute(func(trx *storage.Transaction) error {
		err := trx.PutState("key-one", []byte("data-one"))
		if nil != err {
			return err
		}

		// own writes are visible
		value, err := trx.GetState("key-one")
		assert.Nil(t, err, "wrong GetState")
		assert.Equal(t, []byte("data-one"), value, "own write not visible")
		return nil
	})
	assert.Nil(t, err, "wrong Execute")

	err = l.View(func(trx *storage.Transaction) error {
		value, err := trx.GetState("key-one")
		assert.Nil(t, err, "wrong GetState")
		assert.Equal(t, []byte("data-one"), value, "write not committed")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestExecuteRollsBack(t *testing.T) {
	l := setup(t)
	defer teardown(l)

	failure := errors.New("abort")
	err := l.Execute(func(trx *storage.Transaction) error {
		_ = trx.PutState("key-one", []byte("data-one"))
		return failure
	})
	assert.Equal(t, failure, err, "wrong Execute error")

	err = l.View(func(trx *storage.Transaction) error {
		value, err := trx.GetState("key-one")
		assert.Nil(t, err, "wrong GetState")
		assert.Nil(t, value, "aborted write is visible")

		iter, err := trx.GetHistoryForKey("key-one")
		assert.Nil(t, err, "wrong GetHistoryForKey")
		assert.False(t, iter.HasNext(), "aborted write has history")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestViewDiscards(t *testing.T) {
	l := setup(t)
	defer teardown(l)

	err := l.View(func(trx *storage.Transaction) error {
		return trx.PutState("key-one", []byte("data-one"))
	})
	assert.Nil(t, err, "wrong View")

	err = l.View(func(trx *storage.Transaction) error {
		value, _ := trx.GetState("key-one")
		assert.Nil(t, value, "view write was kept")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestDeleteWithinTransaction(t *testing.T) {
	l := setup(t)
	defer teardown(l)

	err := l.Execute(func(trx *storage.Transaction) error {
		return trx.PutState("key-one", []byte("data-one"))
	})
	assert.Nil(t, err, "wrong Execute")

	err = l.Execute(func(trx *storage.Transaction) error {
		err := trx.DelState("key-one")
		assert.Nil(t, err, "wrong DelState")

		value, err := trx.GetState("key-one")
		assert.Nil(t, err, "wrong GetState")
		assert.Nil(t, value, "deleted key still visible")
		return nil
	})
	assert.Nil(t, err, "wrong Execute")

	err = l.View(func(trx *storage.Transaction) error {
		value, _ := trx.GetState("key-one")
		assert.Nil(t, value, "delete not committed")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestEmptyKey(t *testing.T) {
	l := setup(t)
	defer teardown(l)

	err := l.View(func(trx *storage.Transaction) error {
		_, err := trx.GetState("")
		assert.Equal(t, fault.ErrEmptyKey, err, "wrong GetState error")
		assert.Equal(t, fault.ErrEmptyKey, trx.PutState("", []byte("x")), "wrong PutState error")
		assert.Equal(t, fault.ErrEmptyKey, trx.DelState(""), "wrong DelState error")
		_, err = trx.GetHistoryForKey("")
		assert.Equal(t, fault.ErrEmptyKey, err, "wrong GetHistoryForKey error")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestTxIDsDiffer(t *testing.T) {
	l := setup(t)
	defer teardown(l)

	ids := make(map[string]struct{})
	for i := 0; i < 5; i += 1 {
		err := l.Execute(func(trx *storage.Transaction) error {
			ids[trx.GetTxID()] = struct{}{}
			assert.Equal(t, 64, len(trx.GetTxID()), "wrong tx id length")
			return trx.PutState("counter", []byte{byte(i)})
		})
		assert.Nil(t, err, "wrong Execute")
	}
	assert.Equal(t, 5, len(ids), "duplicate tx ids")
}

func TestClosed(t *testing.T) {
	l := setup(t)

	assert.Nil(t, l.Close(), "wrong first Close")
	assert.Equal(t, fault.ErrNotInitialised, l.Close(), "wrong second Close")

	err := l.Execute(func(trx *storage.Transaction) error {
		t.Fatal("transaction ran on a closed ledger")
		return nil
	})
	assert.Equal(t, fault.ErrNotInitialised, err, "wrong Execute error")
}

func TestOpenPersists(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.leveldb")

	l, err := storage.Open(name, false)
	assert.Nil(t, err, "wrong Open")

	err = l.Execute(func(trx *storage.Transaction) error {
		return trx.PutState("asset1", []byte(`{"owner":"account1"}`))
	})
	assert.Nil(t, err, "wrong Execute")
	assert.Nil(t, l.Close(), "wrong Close")

	l, err = storage.Open(name, true)
	assert.Nil(t, err, "wrong read only Open")
	defer l.Close()

	err = l.View(func(trx *storage.Transaction) error {
		value, err := trx.GetState("asset1")
		assert.Nil(t, err, "wrong GetState")
		assert.Equal(t, []byte(`{"owner":"account1"}`), value, "value not persisted")

		iter, err := trx.GetHistoryForKey("asset1")
		assert.Nil(t, err, "wrong GetHistoryForKey")
		assert.True(t, iter.HasNext(), "history not persisted")
		return nil
	})
	assert.Nil(t, err, "wrong View")
}

func TestOpenReadOnlyMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing.leveldb")

	_, err := storage.Open(name, true)
	assert.NotNil(t, err, "read only open created a database")
}
