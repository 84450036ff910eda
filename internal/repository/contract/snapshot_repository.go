package contract

import (
	"context"

	"study-assistant-be/pkg/store"
)

// SnapshotRepository persists the full application state as one value under
// a fixed key. It satisfies store.Persister.
type SnapshotRepository interface {
	Save(ctx context.Context, state *store.State) error
	Load(ctx context.Context) (*store.State, error)
}
