// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/bitmark-inc/ledgerd/fault"
)

// Number - a numeric field of a record
//
// always written as a JSON number, but documents created from raw
// transaction arguments may hold the value as a string, so both forms
// are accepted when reading
type Number float64

// ParseNumber - convert a transaction argument
func ParseNumber(s string) (Number, error) {
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidNumber, s)
	}
	return Number(f), nil
}

// Float64 - the value as a float
func (n Number) Float64() float64 {
	return float64(n)
}

// String - shortest decimal representation
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// MarshalJSON - convert to JSON number
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fault.ErrInvalidNumber
	}
	return []byte(n.String()), nil
}

// UnmarshalJSON - convert from JSON number or numeric string
func (n *Number) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	s := string(b)
	if len(b) >= 2 && '"' == b[0] {
		unquoted, err := strconv.Unquote(s)
		if nil != err {
			return fault.ErrInvalidNumber
		}
		s = unquoted
	}
	v, err := ParseNumber(s)
	if nil != err {
		return err
	}
	*n = v
	return nil
}
