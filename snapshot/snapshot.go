// Package snapshot is the persistence boundary: the engine hands a full
// serialized copy of its state to a Store after every mutation and asks
// for the previously saved copy on startup.
package snapshot

import (
	"context"

	"github.com/mosburgers/poscore/domain"
)

// Store loads and saves full state snapshots. Load returns (nil, nil)
// when nothing has ever been saved.
type Store interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}
