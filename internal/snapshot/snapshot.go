// Package snapshot persists the application state as one serialized
// document under a fixed, versioned schema key. Changing the key is
// the deployment path for schema changes; old data is simply
// abandoned, there is no migration.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hedef100/academia-core/internal/models"
)

// SchemaKey names the stored snapshot. Bump the suffix to discard
// incompatible data on upgrade.
const SchemaKey = "academia_v9_architect_db"

// ErrNotFound signals that no snapshot exists yet and the caller
// should seed a default state.
var ErrNotFound = errors.New("snapshot not found")

// Store is the load/save contract every backend satisfies. Load never
// returns a state with a live session; Save receives a state whose
// session pointer has already been cleared.
type Store interface {
	Load(ctx context.Context) (*models.AppState, error)
	Save(ctx context.Context, state *models.AppState) error
}

func encode(state *models.AppState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*models.AppState, error) {
	state := &models.AppState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	state.Normalize()
	return state, nil
}
