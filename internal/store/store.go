package store

import (
	"log/slog"

	"github.com/idilsaglam/swimlane/internal/model"
)

// Store owns the live snapshot. Reassign is the only way to change it.
type Store struct {
	snapshot Collection
	logger   *slog.Logger
}

// New initializes a store from seed rows. A nil logger discards.
func New(rows []model.SeedRow, logger *slog.Logger) (*Store, error) {
	c, err := Initialize(rows)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{snapshot: c, logger: logger}, nil
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() Collection { return s.snapshot }

// Reassign moves the item with the given id to lane, replacing the live
// snapshot, and writes the lane-change audit line. It reports whether
// anything changed. Unknown ids are not an error: a drop naming a stale id
// only leaves a debug record.
func (s *Store) Reassign(id string, lane model.Lane) (Collection, bool) {
	next, prev, changed := reassign(s.snapshot, id, lane)
	if !changed {
		if _, ok := s.snapshot.Find(id); !ok || !lane.Valid() {
			s.logger.Debug("reassign ignored", "id", id, "to", lane.String())
		}
		return s.snapshot, false
	}
	s.snapshot = next
	s.logger.Info("lane changed", "id", id, "from", prev.Lane.String(), "to", lane.String())
	return s.snapshot, true
}
