// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - local world state
//
// maintain an on-disk (or in-memory) world state with per-key history
// so the ledger services can run outside of a peer
//
// This maintains a LevelDB database split into a series of pools.
// Each pool is defined by a single prefix byte.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. key          = world state key as raw bytes, composite keys start with 0x00
// 4. sequence     = successive modification number as big endian uint64 (8 bytes)
// 5. tx number    = successive transaction number as big endian uint64 (8 bytes)
// 6. txId         = hex SHA-256(tx number ++ unix nanoseconds)
//
// State:
//
//   S ++ key                   - current value of a key
//                                data: value bytes (JSON documents, 0x00 for index entries)
//
// History:
//
//   H ++ key ++ 0x00 ++ sequence
//                              - one modification of a key, in commit order
//                                data: packed queryresult.KeyModification
//   N ++ key                   - next sequence value to use for the key
//                                data: sequence
//
// Transactions:
//
//   X                          - last committed tx number
//                                data: tx number
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version
//                                data: big endian uint32
package storage
