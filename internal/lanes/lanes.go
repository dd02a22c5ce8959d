// Package lanes derives the per-lane views handed to rendering. Everything
// here is a pure function of a snapshot.
package lanes

import (
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/store"
)

// View returns the items in lane, in collection order.
func View(c store.Collection, lane model.Lane) []model.Item {
	var out []model.Item
	for i := 0; i < c.Len(); i++ {
		if it := c.At(i); it.Lane == lane {
			out = append(out, it)
		}
	}
	return out
}

// Partition runs View for every lane.
func Partition(c store.Collection) map[model.Lane][]model.Item {
	out := make(map[model.Lane][]model.Item, len(model.Lanes))
	for _, l := range model.Lanes {
		out[l] = View(c, l)
	}
	return out
}

// Counts returns the number of items per lane, in model.Lanes order.
func Counts(c store.Collection) [len(model.Lanes)]int {
	var n [len(model.Lanes)]int
	for i, l := range model.Lanes {
		n[i] = len(View(c, l))
	}
	return n
}
