// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the chaincode entry points
//
// each ledger service is exposed as a shim.Chaincode with a fixed table
// of named operations; every operation takes an exact number of string
// arguments and returns a JSON payload
//
// a failed operation returns an error response whose message starts
// with the failure kind, e.g.
//
//   NotFound: asset asset9: does not exist
//   InsufficientBalance: account account1: balance: 10  amount: 20: insufficient balance
//
// store failures have no kind and carry only the store's message
package contract
