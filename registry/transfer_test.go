// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestTransfer(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	admin := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	user := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()

	r, err := New(Config{Admin: admin}, db)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Mint(admin, "ipfs://a"); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		sender common.Address
		id     AssetID
		from   common.Address
		to     common.Address
		owner  common.Address // owner after the call
		err    error
	}{
		{ // unknown asset
			sender: admin,
			id:     9,
			from:   admin,
			to:     user,
			err:    ErrAssetNotFound,
		},
		{ // claimed current owner does not hold the asset
			sender: user,
			id:     1,
			from:   user,
			to:     user,
			err:    ErrNotOwner,
		},
		{ // caller is not acting as the claimed owner
			sender: user,
			id:     1,
			from:   admin,
			to:     user,
			err:    ErrNotOwner,
		},
		{ // successful transfer
			sender: admin,
			id:     1,
			from:   admin,
			to:     user,
			owner:  user,
			err:    nil,
		},
		{ // previous owner lost control
			sender: admin,
			id:     1,
			from:   admin,
			to:     admin,
			err:    ErrNotOwner,
		},
		{ // self-transfer is permitted
			sender: user,
			id:     1,
			from:   user,
			to:     user,
			owner:  user,
			err:    nil,
		},
	}
	for i, tv := range tt {
		err := r.Transfer(tv.sender, tv.id, tv.from, tv.to)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: Transfer err expected %v, got %v", i, tv.err, err)
		}
		if tv.err != nil {
			continue
		}
		owner, has, err := r.OwnerOf(tv.id)
		if err != nil {
			t.Fatalf("#%d: failed to get owner %v", i, err)
		}
		if !has {
			t.Fatalf("#%d: asset missing after transfer", i)
		}
		if owner != tv.owner {
			t.Fatalf("#%d: owner expected %s, got %s", i, tv.owner.Hex(), owner.Hex())
		}
	}
}

func TestTransferClearsListing(t *testing.T) {
	t.Parallel()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	admin := crypto.PubkeyToAddress(priv.PublicKey)

	priv2, err := crypto.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	user := crypto.PubkeyToAddress(priv2.PublicKey)

	db := memdb.New()
	defer db.Close()

	r, err := New(Config{Admin: admin}, db)
	if err != nil {
		t.Fatal(err)
	}
	id, err := r.Mint(admin, "ipfs://a")
	if err != nil {
		t.Fatal(err)
	}
	if err := r.List(admin, id); err != nil {
		t.Fatal(err)
	}

	// A transfer forces the listing off, even a self-transfer.
	if err := r.Transfer(admin, id, admin, admin); err != nil {
		t.Fatal(err)
	}
	listed, _, err := r.IsListed(id)
	if err != nil {
		t.Fatal(err)
	}
	if listed {
		t.Fatal("transfer should clear the listing")
	}

	if err := r.List(admin, id); err != nil {
		t.Fatal(err)
	}
	if err := r.Transfer(admin, id, admin, user); err != nil {
		t.Fatal(err)
	}
	listed, _, err = r.IsListed(id)
	if err != nil {
		t.Fatal(err)
	}
	if listed {
		t.Fatal("transfer should clear the listing")
	}

	stats, err := r.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.ActiveListings != 0 {
		t.Fatalf("active listings expected 0, got %d", stats.ActiveListings)
	}
	if stats.TransferredAssets != 2 {
		t.Fatalf("transferred assets expected 2, got %d", stats.TransferredAssets)
	}
}
