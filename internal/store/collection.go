package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/swimlane/internal/model"
)

var (
	ErrMissingID   = errors.New("seed row has no id")
	ErrDuplicateID = errors.New("duplicate item id")
	ErrUnknownLane = errors.New("unknown lane")
)

// Collection is an immutable snapshot of every item on the board, in
// insertion order. Lane membership is derived from it; there are no
// per-lane lists.
//
// The zero value is an empty board.
type Collection struct {
	items []model.Item
}

// Initialize builds the first snapshot from seed rows. A row without a lane
// starts in the backlog. Rows without an id, repeated ids and unknown lane
// keys are rejected so the board never starts with an item that cannot be
// addressed or that sits in no lane.
func Initialize(rows []model.SeedRow) (Collection, error) {
	items := make([]model.Item, 0, len(rows))
	seen := make(map[string]int, len(rows))
	for i, r := range rows {
		if r.ID == "" {
			return Collection{}, fmt.Errorf("row %d (%q): %w", i+1, r.Name, ErrMissingID)
		}
		if prev, dup := seen[r.ID]; dup {
			return Collection{}, fmt.Errorf("row %d: id %q already used by row %d: %w", i+1, r.ID, prev, ErrDuplicateID)
		}
		seen[r.ID] = i + 1

		lane := model.LaneBacklog
		if r.Lane != "" {
			l, ok := model.ParseLane(r.Lane)
			if !ok {
				return Collection{}, fmt.Errorf("row %d (id %q): %q: %w", i+1, r.ID, r.Lane, ErrUnknownLane)
			}
			lane = l
		}
		items = append(items, model.Item{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Lane:        lane,
		})
	}
	return Collection{items: items}, nil
}

// ReassignLane returns a snapshot where the item with the given id sits in
// lane. Every other item is shared with c unchanged, and c itself is never
// modified. An unknown id or lane returns c as is.
func ReassignLane(c Collection, id string, lane model.Lane) Collection {
	next, _, _ := reassign(c, id, lane)
	return next
}

// reassign also returns the item as it was before the change. ok is false
// when the id is unknown, lane is not a known lane, or the item is already
// in lane.
func reassign(c Collection, id string, lane model.Lane) (Collection, model.Item, bool) {
	if !lane.Valid() {
		return c, model.Item{}, false
	}
	i := c.indexOf(id)
	if i < 0 || c.items[i].Lane == lane {
		return c, model.Item{}, false
	}
	items := make([]model.Item, len(c.items))
	copy(items, c.items)
	items[i] = c.items[i].WithLane(lane)
	return Collection{items: items}, c.items[i], true
}

func (c Collection) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c Collection) Len() int { return len(c.items) }

// At returns the i-th item in collection order.
func (c Collection) At(i int) model.Item { return c.items[i] }

// Find looks an item up by id.
func (c Collection) Find(id string) (model.Item, bool) {
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	return model.Item{}, false
}

// Items returns a copy of the items in collection order.
func (c Collection) Items() []model.Item {
	out := make([]model.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Equal reports whether both snapshots hold the same items in the same order.
func (c Collection) Equal(o Collection) bool {
	if len(c.items) != len(o.items) {
		return false
	}
	for i := range c.items {
		if c.items[i] != o.items[i] {
			return false
		}
	}
	return true
}
