// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package config loads registry configuration from a file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"

	"github.com/ava-labs/assetvm/registry"
)

const envPrefix = "ASSETVM"

var ErrInvalidAdmin = errors.New("invalid admin address")

// Load builds a registry.Config from the optional config file at [path]
// (format inferred from the extension) and ASSETVM_* environment
// variables. Environment variables win over file values. The admin
// address is required and must be a hex address.
func Load(path string) (registry.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := registry.Config{}
	cfg.SetDefaults()
	v.SetDefault("batch-limit", cfg.BatchLimit)
	v.SetDefault("activity-cache-size", cfg.ActivityCacheSize)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return registry.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	admin := v.GetString("admin")
	if !common.IsHexAddress(admin) {
		return registry.Config{}, fmt.Errorf("%w: %q", ErrInvalidAdmin, admin)
	}
	cfg.Admin = common.HexToAddress(admin)
	cfg.BatchLimit = v.GetInt("batch-limit")
	cfg.ActivityCacheSize = v.GetInt("activity-cache-size")
	return cfg, nil
}
