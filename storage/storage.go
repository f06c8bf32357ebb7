// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package storage maintains the registry state layout over any database.
package storage

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/prefixdb"
	"github.com/ava-labs/avalanchego/database/versiondb"
)

var (
	ownerBucket    = []byte("owner")
	ownedBucket    = []byte("owned")
	metadataBucket = []byte("metadata")
	burnedBucket   = []byte("burned")
	listedBucket   = []byte("listed")
	stateBucket    = []byte("state")
	activityBucket = []byte("activity")
)

// Storage splits registry state into one bucket per logical map: the owner
// relation, the by-holder owned index, the metadata/burned/listed columns
// keyed by asset id, the scalar state (id counter, usage counters), and the
// activity feed. Writes are staged until Commit applies them to the base
// database as one batch; Abort discards everything staged since the last
// Commit.
type Storage interface {
	Owner() database.Database
	Owned() database.Database
	Metadata() database.Database
	Burned() database.Database
	Listed() database.Database
	State() database.Database
	Activity() database.Database

	Commit() error
	Abort()
	Close() error
}

type storage struct {
	baseDB     *versiondb.Database
	ownerDB    *prefixdb.Database
	ownedDB    *prefixdb.Database
	metadataDB *prefixdb.Database
	burnedDB   *prefixdb.Database
	listedDB   *prefixdb.Database
	stateDB    *prefixdb.Database
	activityDB *prefixdb.Database
}

func New(db database.Database) Storage {
	baseDB := versiondb.New(db)
	return &storage{
		baseDB:     baseDB,
		ownerDB:    prefixdb.New(ownerBucket, baseDB),
		ownedDB:    prefixdb.New(ownedBucket, baseDB),
		metadataDB: prefixdb.New(metadataBucket, baseDB),
		burnedDB:   prefixdb.New(burnedBucket, baseDB),
		listedDB:   prefixdb.New(listedBucket, baseDB),
		stateDB:    prefixdb.New(stateBucket, baseDB),
		activityDB: prefixdb.New(activityBucket, baseDB),
	}
}

func (s *storage) Owner() database.Database {
	return s.ownerDB
}

func (s *storage) Owned() database.Database {
	return s.ownedDB
}

func (s *storage) Metadata() database.Database {
	return s.metadataDB
}

func (s *storage) Burned() database.Database {
	return s.burnedDB
}

func (s *storage) Listed() database.Database {
	return s.listedDB
}

func (s *storage) State() database.Database {
	return s.stateDB
}

func (s *storage) Activity() database.Database {
	return s.activityDB
}

func (s *storage) Commit() error {
	return s.baseDB.Commit()
}

func (s *storage) Abort() {
	s.baseDB.Abort()
}

func (s *storage) Close() error {
	return s.baseDB.Close()
}
