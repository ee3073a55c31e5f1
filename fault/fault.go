// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type DecodeError GenericError
type IndexError GenericError
type SelfTransferError GenericError
type BalanceError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyExists          = ExistsError("already exists")
	ErrAlreadyInitialised     = ProcessError("already initialised")
	ErrCompositeKey           = IndexError("failed to create composite key")
	ErrDecodeRecord           = DecodeError("failed to decode record")
	ErrEmptyIdentifier        = InvalidError("identifier must not be empty")
	ErrEmptyKey               = InvalidError("key must not be empty")
	ErrInsufficientBalance    = BalanceError("insufficient balance")
	ErrInvalidAmount          = InvalidError("amount must be a positive number")
	ErrInvalidArgumentCount   = InvalidError("incorrect number of arguments")
	ErrInvalidBalance         = InvalidError("balance must not be negative")
	ErrInvalidChaincodeMode   = InvalidError("chaincode mode is invalid")
	ErrInvalidContract        = InvalidError("contract name is invalid")
	ErrInvalidIPAddress       = InvalidError("invalid IP address")
	ErrInvalidNumber          = InvalidError("numeric value is invalid")
	ErrInvalidPortNumber      = InvalidError("invalid port number")
	ErrInvalidSelector        = InvalidError("query selector is invalid")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrIteratorExhausted      = ProcessError("no more results")
	ErrMissingChaincodeID     = InvalidError("chaincode id is required")
	ErrMissingChaincodeListen = InvalidError("chaincode server address is required")
	ErrNotFound               = NotFoundError("does not exist")
	ErrNotInitialised         = ProcessError("not initialised")
	ErrSelfTransfer           = SelfTransferError("cannot transfer to the same account")
	ErrUnknownFunction        = InvalidError("unknown function")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e DecodeError) Error() string       { return string(e) }
func (e IndexError) Error() string        { return string(e) }
func (e SelfTransferError) Error() string { return string(e) }
func (e BalanceError) Error() string      { return string(e) }
func (e ProcessError) Error() string      { return string(e) }

// determine the class of an error, also through any wrapping
func IsErrExists(e error) bool       { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool      { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool     { var x NotFoundError; return errors.As(e, &x) }
func IsErrDecode(e error) bool       { var x DecodeError; return errors.As(e, &x) }
func IsErrIndex(e error) bool        { var x IndexError; return errors.As(e, &x) }
func IsErrSelfTransfer(e error) bool { var x SelfTransferError; return errors.As(e, &x) }
func IsErrBalance(e error) bool      { var x BalanceError; return errors.As(e, &x) }
func IsErrProcess(e error) bool      { var x ProcessError; return errors.As(e, &x) }

// Kind - name of the class of an error
//
// returns an empty string for errors that do not belong to any class,
// e.g. errors passed through from the ledger store
func Kind(e error) string {
	switch {
	case nil == e:
		return ""
	case IsErrExists(e):
		return "AlreadyExists"
	case IsErrNotFound(e):
		return "NotFound"
	case IsErrInvalid(e):
		return "InvalidArgument"
	case IsErrDecode(e):
		return "DecodeError"
	case IsErrIndex(e):
		return "IndexError"
	case IsErrSelfTransfer(e):
		return "SelfTransfer"
	case IsErrBalance(e):
		return "InsufficientBalance"
	case IsErrProcess(e):
		return "ProcessError"
	default:
		return ""
	}
}
