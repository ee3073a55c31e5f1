// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - the account ledger
//
// accounts hold a balance that only changes by TransferMoney, which
// moves an amount from one account to another and never lets the
// paying account go below zero
//
// presence is decided by a selector query on accountID rather than a
// direct read, so ReadAccount and AccountExists only see committed
// state and treat a failed query as an absent account
package account
