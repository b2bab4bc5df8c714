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
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrBalanceOverflow       = LimitError("balance overflow")
	ErrCannotDecodeAccount   = InvalidError("cannot decode account")
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCounterOverflow       = LimitError("counter overflow")
	ErrCounterUnderflow      = LimitError("counter underflow")
	ErrDatabaseIsNotSet      = ProcessError("database is not set")
	ErrDatabaseVersion       = InvalidError("incompatible database version")
	ErrInsufficientFunds     = ProcessError("insufficient funds")
	ErrInvalidAmount         = InvalidError("invalid amount")
	ErrInvalidChain          = InvalidError("invalid chain")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidIdentifier     = InvalidError("invalid identifier")
	ErrInvalidKeyLength      = InvalidError("invalid key length")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidPoolPrefix     = InvalidError("invalid pool prefix")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKittyAlreadyExists    = ExistsError("kitty already exists")
	ErrKittyNotFound         = NotFoundError("kitty not found")
	ErrLedgerIsNotSet        = ProcessError("ledger is not set")
	ErrNotForSale            = InvalidError("kitty is not for sale")
	ErrNotKittyPack          = InvalidError("not kitty pack")
	ErrNotOwner              = InvalidError("caller is not the owner")
	ErrNotPublicKey          = InvalidError("not a public key")
	ErrPaymentFailed         = ProcessError("payment failed")
	ErrPriceTooHigh          = InvalidError("price exceeds maximum")
	ErrRandomSourceIsNotSet  = ProcessError("random source is not set")
	ErrReadOnlyDatabase      = ProcessError("database is read only")
	ErrSelfTrade             = InvalidError("buyer already owns kitty")
	ErrTransactionInUse      = ProcessError("transaction already in use")
	ErrTransactionNotBegun   = ProcessError("transaction not begun")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLimit(e error) bool    { var t LimitError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }

// Class - short name of the error class, used as a metrics label
func Class(e error) string {
	switch {
	case nil == e:
		return "none"
	case IsErrExists(e):
		return "exists"
	case IsErrInvalid(e):
		return "invalid"
	case IsErrLimit(e):
		return "limit"
	case IsErrNotFound(e):
		return "not_found"
	case IsErrProcess(e):
		return "process"
	default:
		return "other"
	}
}
