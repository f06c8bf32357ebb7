// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package registry

// Stats reports cumulative registry usage. Minted, burned and
// transferred counts only grow; active listings track the current
// number of listed assets.
type Stats struct {
	MintedAssets      uint64 `json:"mintedAssets"`
	BurnedAssets      uint64 `json:"burnedAssets"`
	TransferredAssets uint64 `json:"transferredAssets"`
	ActiveListings    uint64 `json:"activeListings"`
}

func (r *Registry) Stats() (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &Stats{}
	state := r.s.State()
	for _, c := range []struct {
		key []byte
		dst *uint64
	}{
		{CountMintedAssets, &stats.MintedAssets},
		{CountBurnedAssets, &stats.BurnedAssets},
		{CountTransferredAssets, &stats.TransferredAssets},
		{CountActiveListings, &stats.ActiveListings},
	} {
		v, err := GetCount(state, c.key)
		if err != nil {
			return nil, err
		}
		*c.dst = v
	}
	return stats, nil
}
