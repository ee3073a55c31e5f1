// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// indent a JSON payload, other payloads are printed as they are
func printPayload(handle io.Writer, payload []byte) error {
	if 0 == len(payload) {
		return nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, payload, "", "  "); nil != err {
		fmt.Fprintf(handle, "%s\n", payload)
		return nil
	}

	fmt.Fprintf(handle, "%s\n", out.Bytes())
	return nil
}
