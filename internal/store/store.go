// Package store persists ledger snapshots. The whole state is written
// after every mutation; there is no delta persistence.
package store

import "github.com/fairshare-dev/fairshare/internal/model"

// Store loads and saves complete ledger snapshots.
type Store interface {
	Load() (model.Snapshot, error)
	Save(model.Snapshot) error
}
