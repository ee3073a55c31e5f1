// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/ledgerd/fault"
)

// field equality conditions, values are JSON scalars
type selector map[string]interface{}

// accepts only: {"selector":{"field":scalar,...}}
func parseSelector(query string) (selector, error) {
	var q struct {
		Selector map[string]interface{} `json:"selector"`
	}

	err := json.Unmarshal([]byte(query), &q)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidSelector, err)
	}
	if nil == q.Selector {
		return nil, fmt.Errorf("%w: missing selector", fault.ErrInvalidSelector)
	}

	for field, value := range q.Selector {
		switch value.(type) {
		case string, float64, bool, nil:
		default:
			return nil, fmt.Errorf("%w: field %q: only scalar equality is supported", fault.ErrInvalidSelector, field)
		}
	}
	return selector(q.Selector), nil
}

// true if the value is a JSON object with all the selected fields
func (s selector) matches(value []byte) bool {
	document := make(map[string]interface{})
	if nil != json.Unmarshal(value, &document) {
		return false
	}

	for field, expected := range s {
		actual, ok := document[field]
		if !ok || actual != expected {
			return false
		}
	}
	return true
}
