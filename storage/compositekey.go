// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"unicode/utf8"
)

const (
	compositeKeyNamespace = 0x00
	minUnicodeRuneValue   = 0
	maxUnicodeRuneValue   = utf8.MaxRune
)

// 0x00 ++ objectType ++ 0x00 ++ attr1 ++ 0x00 ++ ... ++ attrN ++ 0x00
func createCompositeKey(objectType string, attributes []string) (string, error) {
	if err := validateCompositeKeyAttribute(objectType); nil != err {
		return "", err
	}

	ck := string(rune(compositeKeyNamespace)) + objectType + string(rune(minUnicodeRuneValue))
	for _, att := range attributes {
		if err := validateCompositeKeyAttribute(att); nil != err {
			return "", err
		}
		ck += att + string(rune(minUnicodeRuneValue))
	}
	return ck, nil
}

func validateCompositeKeyAttribute(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("not a valid utf8 string: [%x]", s)
	}
	for index, runeValue := range s {
		if minUnicodeRuneValue == runeValue || maxUnicodeRuneValue == runeValue {
			return fmt.Errorf("input contains unicode %#U starting at position [%d]. %#U and %#U are not allowed in the input attribute of a composite key",
				runeValue, index, minUnicodeRuneValue, maxUnicodeRuneValue)
		}
	}
	return nil
}
