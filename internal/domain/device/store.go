package device

import (
	"errors"
	"sync"
)

// ErrEmptySnapshot is returned when a status update carries no channels.
// An empty report is a client error, not a no-op.
var ErrEmptySnapshot = errors.New("status snapshot must contain at least one channel")

// StateStore holds the most recent status snapshot reported by the device.
// Each update replaces the previous snapshot wholesale; there is no history
// and no per-channel merge. Safe for concurrent use.
type StateStore struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

// Update replaces the stored snapshot with the given one. The store is left
// unchanged if the snapshot is empty.
func (s *StateStore) Update(snapshot Snapshot) error {
	if len(snapshot) == 0 {
		return ErrEmptySnapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot.Clone()
	return nil
}

// Current returns the latest snapshot, or an empty snapshot if the device
// has never reported.
func (s *StateStore) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}
