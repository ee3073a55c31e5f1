// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken from the directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - make the path absolute and create it if missing
func EnsureDirectory(directory string, path string) (string, error) {
	path = EnsureAbsolute(directory, path)
	if err := os.MkdirAll(path, 0700); nil != err {
		return "", err
	}
	return path, nil
}

// CheckDirectory - the path must exist and be a directory
func CheckDirectory(path string) error {
	fileInfo, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", path)
	}
	return nil
}

// IsPlainName - true for a file name without any directory part
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != name && "." != name && ".." != name
	default:
		return false
	}
}
