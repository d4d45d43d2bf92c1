// Package storage persists the year snapshot as a single JSON document in a
// SQLite-backed key-value table. Reads and writes are whole-value only: the
// entire state is serialized under one fixed key after every mutation, and
// an interrupted write leaves the previous snapshot intact.
package storage

import (
	"context"

	"github.com/dowk233/steelMaster/internal/model"
)

// StateKey is the fixed key the year snapshot lives under.
const StateKey = "year_state_v1"

// Store loads and saves the whole year snapshot.
//
// Load never surfaces a bad snapshot: an absent or unparsable document
// yields the hard-coded default state (nothing is written back), and legacy
// documents are repaired by an additive migration pass. Only infrastructure
// failures (the database itself erroring) are returned.
//
// Save errors propagate to the caller; a failed write is the one failure
// mode the core does not mask.
type Store interface {
	Load(ctx context.Context) (model.YearState, error)
	Save(ctx context.Context, state model.YearState) error
}
