// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

// List marks [id] as available on the marketplace. Only the owner may
// list and a burned asset can never be listed.
func (r *Registry) List(sender common.Address, id AssetID) error {
	return r.setListed(sender, id, true)
}

// Unlist withdraws [id] from the marketplace.
func (r *Registry) Unlist(sender common.Address, id AssetID) error {
	return r.setListed(sender, id, false)
}

func (r *Registry) setListed(sender common.Address, id AssetID, listed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.s.Abort()

	if err := r.verifyAsset(id, sender); err != nil {
		return err
	}
	cur, err := GetFlag(r.s.Listed(), id)
	if err != nil {
		return err
	}
	// Already in the desired state: idempotent success, nothing written.
	if cur == listed {
		return nil
	}

	if err := PutFlag(r.s.Listed(), id, listed); err != nil {
		return err
	}
	typ := Unlist
	if listed {
		typ = List
		err = AddCount(r.s.State(), CountActiveListings, 1)
	} else {
		err = SubCount(r.s.State(), CountActiveListings, 1)
	}
	if err != nil {
		return err
	}
	if err := r.appendActivity(newActivity(sender, typ, id)); err != nil {
		return err
	}
	if err := r.s.Commit(); err != nil {
		return err
	}
	log.Debug("updated asset listing", "asset", id, "listed", listed)
	return nil
}

// clearListing stages listed=false for [id], adjusting the active
// listing count when the asset was listed. Used by transfer and burn,
// which force delisting regardless of prior state.
func (r *Registry) clearListing(id AssetID) error {
	listed, err := GetFlag(r.s.Listed(), id)
	if err != nil {
		return err
	}
	if !listed {
		return nil
	}
	if err := PutFlag(r.s.Listed(), id, false); err != nil {
		return err
	}
	return SubCount(r.s.State(), CountActiveListings, 1)
}
