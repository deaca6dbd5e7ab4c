package store

import (
	"path/filepath"
	"testing"
	"time"
)

// NewTestStore creates a store persisted to a throwaway snapshot file.
// Due dates are computed in UTC for determinism.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "snapshot.json")
	s, err := Open(path, time.UTC)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	return s
}
