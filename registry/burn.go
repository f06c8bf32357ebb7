// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

// Burn permanently retires [id]. The owner record is retained for audit
// but every later mutation of the asset is rejected. Burning clears any
// active listing.
func (r *Registry) Burn(sender common.Address, id AssetID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.s.Abort()

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
		return ErrAlreadyBurned
	}
	if !bytes.Equal(owner[:], sender[:]) {
		return ErrNotOwner
	}

	if err := PutFlag(r.s.Burned(), id, true); err != nil {
		return err
	}
	if err := r.clearListing(id); err != nil {
		return err
	}
	if err := AddCount(r.s.State(), CountBurnedAssets, 1); err != nil {
		return err
	}
	if err := r.appendActivity(newActivity(sender, Burn, id)); err != nil {
		return err
	}
	if err := r.s.Commit(); err != nil {
		return err
	}
	log.Debug("burned asset", "asset", id, "owner", sender.Hex())
	return nil
}
