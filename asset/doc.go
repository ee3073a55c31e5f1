// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - the asset ledger
//
// an asset moves through three states:
// a. absent, before CreateAsset or after DeleteAsset
// b. live, stored under its assetID with a color~assetID index entry
// c. live with a new owner after each TransferAsset
//
// every operation runs inside one transaction of the supplied stub,
// reads are all done before the first write
package asset
