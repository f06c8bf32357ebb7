// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package parser

import (
	"errors"
)

const (
	// DefaultBatchLimit is the maximum number of assets minted in one batch
	// unless the registry is configured with a different limit.
	DefaultBatchLimit = 50
)

var ErrBatchTooBig = errors.New("batch too big")

// CheckBatchLen returns an error if a mint batch exceeds the limit.
func CheckBatchLen(n int, limit int) error {
	if n > limit {
		return ErrBatchTooBig
	}
	return nil
}
