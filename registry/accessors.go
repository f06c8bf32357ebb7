// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// Read accessors are total over the ID space: querying an unminted ID
// reports absence instead of failing. Errors are storage faults only.

// OwnerOf returns the current owner of [id]. Burned assets keep their
// last owner.
func (r *Registry) OwnerOf(id AssetID) (common.Address, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return GetOwner(r.s.Owner(), id)
}

// MetadataURI returns the metadata URI of [id].
func (r *Registry) MetadataURI(id AssetID) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	has, err := HasAsset(r.s.Owner(), id)
	if err != nil {
		return "", false, err
	}
	if !has {
		return "", false, nil
	}
	return GetURI(r.s.Metadata(), id)
}

// IsBurned reports whether [id] has been burned.
func (r *Registry) IsBurned(id AssetID) (bool, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.flagOf(r.s.Burned(), id)
}

// IsListed reports whether [id] is listed on the marketplace.
func (r *Registry) IsListed(id AssetID) (bool, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.flagOf(r.s.Listed(), id)
}

// Exists reports whether [id] has ever been minted.
func (r *Registry) Exists(id AssetID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return HasAsset(r.s.Owner(), id)
}

// OwnedBy returns the IDs of every asset held by [owner] in ascending
// order. Burned assets stay with their last holder.
func (r *Registry) OwnedBy(owner common.Address) ([]AssetID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return GetAllOwned(r.s.Owned(), owner)
}

// TotalMinted returns how many assets have ever been minted, burned or
// not. Equal to the highest assigned ID.
func (r *Registry) TotalMinted() (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	next, err := GetNextID(r.s.State())
	if err != nil {
		return 0, err
	}
	return uint64(next) - 1, nil
}

// Admin returns the minting identity. Fixed for the registry lifetime.
func (r *Registry) Admin() common.Address {
	return r.cfg.Admin
}

// Info returns the full record for [id] in one read.
func (r *Registry) Info(id AssetID) (*AssetInfo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owner, has, err := GetOwner(r.s.Owner(), id)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	uri, _, err := GetURI(r.s.Metadata(), id)
	if err != nil {
		return nil, false, err
	}
	burned, err := GetFlag(r.s.Burned(), id)
	if err != nil {
		return nil, false, err
	}
	listed, err := GetFlag(r.s.Listed(), id)
	if err != nil {
		return nil, false, err
	}
	return &AssetInfo{
		ID:     id,
		Owner:  owner,
		URI:    uri,
		Burned: burned,
		Listed: listed,
	}, true, nil
}

func (r *Registry) flagOf(db database.Database, id AssetID) (bool, bool, error) {
	has, err := HasAsset(r.s.Owner(), id)
	if err != nil {
		return false, false, err
	}
	if !has {
		return false, false, nil
	}
	v, err := GetFlag(db, id)
	if err != nil {
		return false, false, err
	}
	return v, true, nil
}
