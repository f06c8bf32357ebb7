// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/assetvm/parser"
)

// UpdateMetadata replaces the metadata URI of [id]. Only the owner may
// update and burned assets are immutable.
func (r *Registry) UpdateMetadata(sender common.Address, id AssetID, uri string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.s.Abort()

	if err := r.verifyAsset(id, sender); err != nil {
		return err
	}
	if err := parser.CheckURI(uri); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}

	if err := PutURI(r.s.Metadata(), id, uri); err != nil {
		return err
	}
	a := newActivity(sender, SetMetadata, id)
	a.URI = uri
	if err := r.appendActivity(a); err != nil {
		return err
	}
	if err := r.s.Commit(); err != nil {
		return err
	}
	log.Debug("updated asset metadata", "asset", id)
	return nil
}
