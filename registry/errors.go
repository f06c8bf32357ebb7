// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
)

var (
	// Construction
	ErrNoAdmin       = errors.New("admin address is not set")
	ErrAdminMismatch = errors.New("admin does not match stored admin")

	// Authorization
	ErrNotAdmin = errors.New("sender is not the admin")
	ErrNotOwner = errors.New("sender is not the asset owner")

	// Asset State
	ErrAssetNotFound = errors.New("asset not found")
	ErrAlreadyExists = errors.New("asset already exists")
	ErrAlreadyBurned = errors.New("asset already burned")
	ErrAssetBurned   = errors.New("operation not allowed on burned asset")

	// Input Correctness
	ErrInvalidURI    = errors.New("invalid metadata URI")
	ErrBatchTooLarge = errors.New("batch too large")
)
