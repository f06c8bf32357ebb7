// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/parser"
)

// Mint creates a new asset owned by [sender] with metadata [uri]. Only
// the admin may mint.
func (r *Registry) Mint(sender common.Address, uri string) (AssetID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.s.Abort()

	if !r.isAdmin(sender) {
		return 0, ErrNotAdmin
	}
	if err := parser.CheckURI(uri); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	id, err := r.mint(sender, uri)
	if err != nil {
		return 0, err
	}
	if err := r.s.Commit(); err != nil {
		return 0, err
	}
	log.Debug("minted asset", "asset", id, "owner", sender.Hex())
	return id, nil
}

// BatchMint mints one asset per URI in input order, all owned by
// [sender]. The batch is all-or-nothing: every URI is validated up
// front and all assets are committed together, so a rejected batch
// mints nothing and leaves the ID counter untouched.
func (r *Registry) BatchMint(sender common.Address, uris []string) ([]AssetID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.s.Abort()

	if !r.isAdmin(sender) {
		return nil, ErrNotAdmin
	}
	if err := parser.CheckBatchLen(len(uris), r.cfg.BatchLimit); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBatchTooLarge, err)
	}
	for i, uri := range uris {
		if err := parser.CheckURI(uri); err != nil {
			return nil, fmt.Errorf("%w: uri %d: %v", ErrInvalidURI, i, err)
		}
	}

	out := make([]AssetID, 0, len(uris))
	for _, uri := range uris {
		id, err := r.mint(sender, uri)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := r.s.Commit(); err != nil {
		return nil, err
	}
	log.Debug("minted asset batch", "assets", len(out), "owner", sender.Hex())
	return out, nil
}

// mint stages a single mint without committing. The collision check is
// unreachable unless stored state is corrupted.
func (r *Registry) mint(sender common.Address, uri string) (AssetID, error) {
	id, err := GetNextID(r.s.State())
	if err != nil {
		return 0, err
	}
	exists, err := HasAsset(r.s.Owner(), id)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrAlreadyExists
	}

	if err := PutOwner(r.s.Owner(), id, sender); err != nil {
		return 0, err
	}
	if err := PutOwned(r.s.Owned(), sender, id); err != nil {
		return 0, err
	}
	if err := PutURI(r.s.Metadata(), id, uri); err != nil {
		return 0, err
	}
	if err := PutFlag(r.s.Burned(), id, false); err != nil {
		return 0, err
	}
	if err := PutFlag(r.s.Listed(), id, false); err != nil {
		return 0, err
	}
	if err := PutNextID(r.s.State(), id+1); err != nil {
		return 0, err
	}
	if err := AddCount(r.s.State(), CountMintedAssets, 1); err != nil {
		return 0, err
	}

	a := newActivity(sender, Mint, id)
	a.URI = uri
	if err := r.appendActivity(a); err != nil {
		return 0, err
	}
	return id, nil
}
