// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// State keys
var (
	adminKey       = []byte("admin")
	nextIDKey      = []byte("next_id")
	activitySeqKey = []byte("activity_seq")
)

// Usage counters, tracked in the state bucket.
var (
	CountMintedAssets      = []byte("mintedAssets")
	CountBurnedAssets      = []byte("burnedAssets")
	CountTransferredAssets = []byte("transferredAssets")
	CountActiveListings    = []byte("activeListings")
)

var (
	boolTrue  = []byte{0x1}
	boolFalse = []byte{0x0}
)

// assetKey is big-endian so numeric ID order matches byte order.
func assetKey(id AssetID) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func HasAsset(db database.Database, id AssetID) (bool, error) {
	return db.Has(assetKey(id))
}

func GetOwner(db database.Database, id AssetID) (common.Address, bool, error) {
	v, err := db.Get(assetKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, err
	}
	return common.BytesToAddress(v), true, nil
}

func PutOwner(db database.Database, id AssetID, owner common.Address) error {
	return db.Put(assetKey(id), owner[:])
}

// ownedKey indexes assets by holder so a holder's assets can be scanned
// with one prefix iteration.
func ownedKey(owner common.Address, id AssetID) []byte {
	return append(owner[:], assetKey(id)...)
}

func PutOwned(db database.Database, owner common.Address, id AssetID) error {
	return db.Put(ownedKey(owner, id), nil)
}

func DeleteOwned(db database.Database, owner common.Address, id AssetID) error {
	return db.Delete(ownedKey(owner, id))
}

// GetAllOwned returns the IDs of all assets held by [owner], ascending.
func GetAllOwned(db database.Database, owner common.Address) ([]AssetID, error) {
	ids := []AssetID{}
	cursor := db.NewIteratorWithPrefix(owner[:])
	defer cursor.Release()
	for cursor.Next() {
		// [owner] + [asset id]
		k := cursor.Key()
		ids = append(ids, AssetID(binary.BigEndian.Uint64(k[common.AddressLength:])))
	}
	return ids, cursor.Error()
}

func GetURI(db database.Database, id AssetID) (string, bool, error) {
	v, err := db.Get(assetKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

func PutURI(db database.Database, id AssetID, uri string) error {
	return db.Put(assetKey(id), []byte(uri))
}

// GetFlag reads a burned/listed bit. Missing entries read as unset so
// flags never need a tombstone.
func GetFlag(db database.Database, id AssetID) (bool, error) {
	v, err := db.Get(assetKey(id))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(v) == 1 && v[0] == boolTrue[0], nil
}

func PutFlag(db database.Database, id AssetID, set bool) error {
	if set {
		return db.Put(assetKey(id), boolTrue)
	}
	return db.Put(assetKey(id), boolFalse)
}

// GetNextID returns the ID the next mint will take. IDs start at 1.
func GetNextID(db database.Database) (AssetID, error) {
	v, err := db.Get(nextIDKey)
	if errors.Is(err, database.ErrNotFound) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return AssetID(binary.BigEndian.Uint64(v)), nil
}

func PutNextID(db database.Database, id AssetID) error {
	return db.Put(nextIDKey, assetKey(id))
}

func GetAdmin(db database.Database) (common.Address, bool, error) {
	v, err := db.Get(adminKey)
	if errors.Is(err, database.ErrNotFound) {
		return common.Address{}, false, nil
	}
	if err != nil {
		return common.Address{}, false, err
	}
	return common.BytesToAddress(v), true, nil
}

func PutAdmin(db database.Database, admin common.Address) error {
	return db.Put(adminKey, admin[:])
}

func GetCount(db database.Database, key []byte) (uint64, error) {
	v, err := db.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func putCount(db database.Database, key []byte, c uint64) error {
	v := make([]byte, 8)
	binary.BigEndian.PutUint64(v, c)
	return db.Put(key, v)
}

func AddCount(db database.Database, key []byte, delta uint64) error {
	c, err := GetCount(db, key)
	if err != nil {
		return err
	}
	return putCount(db, key, c+delta)
}

// SubCount floors at zero rather than underflowing.
func SubCount(db database.Database, key []byte, delta uint64) error {
	c, err := GetCount(db, key)
	if err != nil {
		return err
	}
	if delta > c {
		delta = c
	}
	return putCount(db, key, c-delta)
}

func GetActivitySeq(db database.Database) (uint64, error) {
	return GetCount(db, activitySeqKey)
}

func PutActivitySeq(db database.Database, seq uint64) error {
	return putCount(db, activitySeqKey, seq)
}

func activityKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}

func PutActivity(db database.Database, seq uint64, a *Activity) error {
	b, err := Marshal(a)
	if err != nil {
		return err
	}
	return db.Put(activityKey(seq), b)
}

func GetActivity(db database.Database, seq uint64) (*Activity, bool, error) {
	v, err := db.Get(activityKey(seq))
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var a Activity
	if _, err := Unmarshal(v, &a); err != nil {
		return nil, false, err
	}
	return &a, true, nil
}

func DeleteActivity(db database.Database, seq uint64) error {
	return db.Delete(activityKey(seq))
}
