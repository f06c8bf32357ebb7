// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ethereum/go-ethereum/common"
)

// AssetID identifies a minted asset. IDs are assigned densely starting
// at 1, so the ID also encodes mint order.
type AssetID uint64

type AssetInfo struct {
	ID    AssetID        `serialize:"true" json:"id"`
	Owner common.Address `serialize:"true" json:"owner"`
	URI   string         `serialize:"true" json:"uri"`

	// Burned assets keep their last owner and URI for auditability but
	// reject all further mutations.
	Burned bool `serialize:"true" json:"burned"`
	Listed bool `serialize:"true" json:"listed"`
}
