// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registry implements the asset registry: minting, ownership
// transfer, burning and marketplace listing over versioned storage.
package registry

import (
	"bytes"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/parser"
	"github.com/ava-labs/assetvm/storage"
	"github.com/ava-labs/assetvm/version"
)

var zeroAddress = common.Address{}

// Registry tracks minted assets and enforces who may mutate them. All
// mutations stage writes on versioned storage and commit atomically, so
// a rejected or failed operation leaves no partial state behind.
type Registry struct {
	mu sync.RWMutex

	cfg Config
	s   storage.Storage
}

// New opens a registry over [db]. The admin address in [cfg] is pinned
// on first use; reopening with a different admin fails.
func New(cfg Config, db database.Database) (*Registry, error) {
	if bytes.Equal(cfg.Admin[:], zeroAddress[:]) {
		return nil, ErrNoAdmin
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = parser.DefaultBatchLimit
	}
	if cfg.ActivityCacheSize <= 0 {
		cfg.ActivityCacheSize = defaultActivityCacheSize
	}

	r := &Registry{
		cfg: cfg,
		s:   storage.New(db),
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) init() error {
	defer r.s.Abort()

	stored, has, err := GetAdmin(r.s.State())
	if err != nil {
		return err
	}
	if !has {
		if err := PutAdmin(r.s.State(), r.cfg.Admin); err != nil {
			return err
		}
		if err := r.s.Commit(); err != nil {
			return err
		}
		log.Info("initialized asset registry", "admin", r.cfg.Admin.Hex(), "version", version.Version)
		return nil
	}
	if !bytes.Equal(stored[:], r.cfg.Admin[:]) {
		return ErrAdminMismatch
	}
	log.Debug("loaded asset registry", "admin", r.cfg.Admin.Hex(), "version", version.Version)
	return nil
}

// Close releases the underlying storage.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.s.Close()
}

func (r *Registry) isAdmin(sender common.Address) bool {
	return bytes.Equal(sender[:], r.cfg.Admin[:])
}

// verifyAsset gates owner mutations: the asset must exist, must not be
// burned and must be owned by [sender].
func (r *Registry) verifyAsset(id AssetID, sender common.Address) error {
	owner, has, err := GetOwner(r.s.Owner(), id)
	if err != nil {
		return err
	}
	if !has {
		return ErrAssetNotFound
	}
	burned, err := GetFlag(r.s.Burned(), id)
	if err != nil {
		return err
	}
	if burned {
		return ErrAssetBurned
	}
	if !bytes.Equal(owner[:], sender[:]) {
		return ErrNotOwner
	}
	return nil
}
