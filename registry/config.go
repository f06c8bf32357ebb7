// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/assetvm/parser"
)

const defaultActivityCacheSize = 128

type Config struct {
	// Admin is the only address allowed to mint assets. It is fixed at
	// registry creation and persisted with the registry state.
	Admin common.Address `serialize:"true" json:"admin"`

	// BatchLimit caps the number of assets minted in a single batch.
	BatchLimit int `serialize:"true" json:"batchLimit"`

	// ActivityCacheSize bounds how many recent activity records are
	// retained for RecentActivity.
	ActivityCacheSize int `serialize:"true" json:"activityCacheSize"`
}

func (c *Config) SetDefaults() {
	c.BatchLimit = parser.DefaultBatchLimit
	c.ActivityCacheSize = defaultActivityCacheSize
}
