// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package parser defines asset input validation operations.
package parser

import (
	"errors"
	"unicode/utf8"
)

const (
	// MaxURISize is the maximum metadata URI length in bytes. Length is
	// measured in bytes, the same unit the storage layer charges for.
	MaxURISize = 256
)

var (
	ErrURIEmpty   = errors.New("uri cannot be empty")
	ErrURITooBig  = errors.New("uri too big")
	ErrURIInvalid = errors.New("uri is not valid utf-8")
)

// CheckURI returns an error if the metadata URI format is invalid.
func CheckURI(uri string) error {
	switch {
	case len(uri) == 0:
		return ErrURIEmpty
	case len(uri) > MaxURISize:
		return ErrURITooBig
	case !utf8.ValidString(uri):
		return ErrURIInvalid
	default:
		return nil
	}
}
