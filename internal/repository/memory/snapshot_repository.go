package memory

import (
	"context"
	"encoding/json"
	"sync"

	"study-assistant-be/internal/repository/contract"
	"study-assistant-be/pkg/store"
)

// SnapshotRepository is the in-memory persister used by tests. Save/Load go
// through a JSON round trip so tests exercise the same serialization the
// durable store does.
type SnapshotRepository struct {
	mu      sync.Mutex
	payload []byte
	saves   int
}

var _ contract.SnapshotRepository = &SnapshotRepository{}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

func (r *SnapshotRepository) Save(_ context.Context, state *store.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.payload = payload
	r.saves++
	return nil
}

func (r *SnapshotRepository) Load(_ context.Context) (*store.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.payload == nil {
		return nil, nil
	}
	var state store.State
	if err := json.Unmarshal(r.payload, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Saves reports how many snapshot writes happened.
func (r *SnapshotRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
