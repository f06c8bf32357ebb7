// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

import (
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

const (
	Mint        = "mint"
	Transfer    = "transfer"
	Burn        = "burn"
	List        = "list"
	Unlist      = "unlist"
	SetMetadata = "set_metadata"
)

type Activity struct {
	Tmstmp int64   `serialize:"true" json:"timestamp"`
	Sender string  `serialize:"true" json:"sender"`
	Typ    string  `serialize:"true" json:"type"`
	Asset  AssetID `serialize:"true" json:"asset,omitempty"`
	To     string  `serialize:"true" json:"to,omitempty"` // common.Address will be 0x000 when not populated
	URI    string  `serialize:"true" json:"uri,omitempty"`
}

// ID hashes the serialized activity so callers can reference a record
// without relying on its position in the feed.
func (a *Activity) ID() (ids.ID, error) {
	b, err := Marshal(a)
	if err != nil {
		return ids.ID{}, err
	}
	h := sha3.Sum256(b)
	return ids.ToID(h[:])
}

func newActivity(sender common.Address, typ string, asset AssetID) *Activity {
	return &Activity{
		Sender: sender.Hex(),
		Typ:    typ,
		Asset:  asset,
	}
}

// appendActivity stages an activity record in the same transaction as
// the mutation it describes, pruning entries that fall outside the
// retention window.
func (r *Registry) appendActivity(a *Activity) error {
	a.Tmstmp = time.Now().Unix()
	seq, err := GetActivitySeq(r.s.State())
	if err != nil {
		return err
	}
	seq++
	if err := PutActivity(r.s.Activity(), seq, a); err != nil {
		return err
	}
	if err := PutActivitySeq(r.s.State(), seq); err != nil {
		return err
	}
	window := uint64(r.cfg.ActivityCacheSize)
	if seq > window {
		return DeleteActivity(r.s.Activity(), seq-window)
	}
	return nil
}

// RecentActivity returns up to [n] of the most recent activity records,
// newest first. At most ActivityCacheSize records are retained.
func (r *Registry) RecentActivity(n int) ([]*Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 {
		return []*Activity{}, nil
	}
	if n > r.cfg.ActivityCacheSize {
		n = r.cfg.ActivityCacheSize
	}
	seq, err := GetActivitySeq(r.s.State())
	if err != nil {
		return nil, err
	}
	activity := []*Activity{}
	for i := uint64(0); i < uint64(n) && seq > i; i++ {
		a, has, err := GetActivity(r.s.Activity(), seq-i)
		if err != nil {
			return nil, err
		}
		if !has {
			break
		}
		activity = append(activity, a)
	}
	return activity, nil
}
