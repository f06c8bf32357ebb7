// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/ava-labs/assetvm/parser"
)

func TestMint(t *testing.T) {
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

	tt := []struct {
		sender common.Address
		uri    string
		id     AssetID
		err    error
	}{
		{ // only the admin may mint
			sender: user,
			uri:    "ipfs://a",
			err:    ErrNotAdmin,
		},
		{ // first asset takes ID 1
			sender: admin,
			uri:    "ipfs://a",
			id:     1,
			err:    nil,
		},
		{ // empty URI rejected
			sender: admin,
			uri:    "",
			err:    ErrInvalidURI,
		},
		{ // URI above the byte limit rejected
			sender: admin,
			uri:    strings.Repeat("a", parser.MaxURISize+1),
			err:    ErrInvalidURI,
		},
		{ // URI at the byte limit accepted, IDs stay dense across failures
			sender: admin,
			uri:    strings.Repeat("a", parser.MaxURISize),
			id:     2,
			err:    nil,
		},
	}
	for i, tv := range tt {
		id, err := r.Mint(tv.sender, tv.uri)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: Mint err expected %v, got %v", i, tv.err, err)
		}
		if tv.err != nil {
			continue
		}
		if id != tv.id {
			t.Fatalf("#%d: id expected %d, got %d", i, tv.id, id)
		}
		owner, has, err := r.OwnerOf(id)
		if err != nil {
			t.Fatalf("#%d: failed to get owner %v", i, err)
		}
		if !has {
			t.Fatalf("#%d: minted asset missing", i)
		}
		if owner != tv.sender {
			t.Fatalf("#%d: owner expected %s, got %s", i, tv.sender.Hex(), owner.Hex())
		}
		uri, _, err := r.MetadataURI(id)
		if err != nil {
			t.Fatalf("#%d: failed to get metadata %v", i, err)
		}
		if uri != tv.uri {
			t.Fatalf("#%d: uri expected %q, got %q", i, tv.uri, uri)
		}
		burned, _, err := r.IsBurned(id)
		if err != nil {
			t.Fatalf("#%d: failed to get burned %v", i, err)
		}
		if burned {
			t.Fatalf("#%d: new asset should not be burned", i)
		}
		listed, _, err := r.IsListed(id)
		if err != nil {
			t.Fatalf("#%d: failed to get listed %v", i, err)
		}
		if listed {
			t.Fatalf("#%d: new asset should not be listed", i)
		}
	}

	// Failed mints must not advance the counter.
	total, err := r.TotalMinted()
	if err != nil {
		t.Fatal(err)
	}
	if total != 2 {
		t.Fatalf("total minted expected 2, got %d", total)
	}
}

func TestBatchMint(t *testing.T) {
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

	uris := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "ipfs://asset"
		}
		return out
	}

	tt := []struct {
		sender common.Address
		uris   []string
		ids    []AssetID
		err    error
	}{
		{ // only the admin may batch mint
			sender: user,
			uris:   uris(2),
			err:    ErrNotAdmin,
		},
		{ // over the batch limit, nothing minted
			sender: admin,
			uris:   uris(parser.DefaultBatchLimit + 1),
			err:    ErrBatchTooLarge,
		},
		{ // one bad URI rejects the whole batch
			sender: admin,
			uris:   []string{"ipfs://a", "", "ipfs://c"},
			err:    ErrInvalidURI,
		},
		{ // empty batch is a valid no-op
			sender: admin,
			uris:   nil,
			ids:    []AssetID{},
			err:    nil,
		},
		{ // IDs assigned in input order
			sender: admin,
			uris:   []string{"ipfs://a", "ipfs://b", "ipfs://c"},
			ids:    []AssetID{1, 2, 3},
			err:    nil,
		},
		{ // batch at the limit succeeds
			sender: admin,
			uris:   uris(parser.DefaultBatchLimit),
			err:    nil,
		},
	}
	for i, tv := range tt {
		ids, err := r.BatchMint(tv.sender, tv.uris)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: BatchMint err expected %v, got %v", i, tv.err, err)
		}
		if tv.err != nil {
			// Rejected batches must not advance the counter.
			total, err := r.TotalMinted()
			if err != nil {
				t.Fatalf("#%d: failed to get total minted %v", i, err)
			}
			if total != 0 {
				t.Fatalf("#%d: rejected batch minted %d assets", i, total)
			}
			continue
		}
		if len(ids) != len(tv.uris) {
			t.Fatalf("#%d: ids expected %d, got %d", i, len(tv.uris), len(ids))
		}
		if tv.ids != nil {
			for j, id := range tv.ids {
				if ids[j] != id {
					t.Fatalf("#%d: ids[%d] expected %d, got %d", i, j, id, ids[j])
				}
			}
		}
		for j, id := range ids {
			uri, has, err := r.MetadataURI(id)
			if err != nil {
				t.Fatalf("#%d: failed to get metadata %v", i, err)
			}
			if !has {
				t.Fatalf("#%d: asset %d missing", i, id)
			}
			if uri != tv.uris[j] {
				t.Fatalf("#%d: uri expected %q, got %q", i, tv.uris[j], uri)
			}
		}
	}

	total, err := r.TotalMinted()
	if err != nil {
		t.Fatal(err)
	}
	want := uint64(3 + parser.DefaultBatchLimit)
	if total != want {
		t.Fatalf("total minted expected %d, got %d", want, total)
	}
}
