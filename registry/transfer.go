// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"
)

// Transfer moves [id] from [from] to [to]. The caller must be acting as
// the claimed current owner, so both the recorded owner and [sender]
// must equal [from]. A transfer always clears the listing, including a
// self-transfer.
func (r *Registry) Transfer(sender common.Address, id AssetID, from common.Address, to common.Address) error {
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
		return ErrAssetBurned
	}
	if !bytes.Equal(owner[:], from[:]) {
		return ErrNotOwner
	}
	if !bytes.Equal(sender[:], from[:]) {
		return ErrNotOwner
	}

	if err := PutOwner(r.s.Owner(), id, to); err != nil {
		return err
	}
	// Delete before put so a self-transfer keeps its owned entry.
	if err := DeleteOwned(r.s.Owned(), from, id); err != nil {
		return err
	}
	if err := PutOwned(r.s.Owned(), to, id); err != nil {
		return err
	}
	if err := r.clearListing(id); err != nil {
		return err
	}
	if err := AddCount(r.s.State(), CountTransferredAssets, 1); err != nil {
		return err
	}
	a := newActivity(sender, Transfer, id)
	a.To = to.Hex()
	if err := r.appendActivity(a); err != nil {
		return err
	}
	if err := r.s.Commit(); err != nil {
		return err
	}
	log.Debug("transferred asset", "asset", id, "from", from.Hex(), "to", to.Hex())
	return nil
}
