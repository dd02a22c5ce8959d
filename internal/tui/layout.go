package tui

import (
	"github.com/idilsaglam/swimlane/internal/drag"
	"github.com/idilsaglam/swimlane/internal/lanes"
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/store"
	"github.com/idilsaglam/swimlane/internal/surface"
)

const (
	headerHeight = 2 // title + progress
	cardHeight   = 3 // name, description, gap

	// Rows a lane box spends on its border and title.
	laneChrome = 3

	minWidth  = 30
	minHeight = 10
)

// laneBox is one column of a render pass.
type laneBox struct {
	lane   model.Lane
	rect   surface.Rect
	items  []model.Item
	offset int
	cards  []cardBox
}

type cardBox struct {
	item model.Item
	rect surface.Rect
}

// visibleCards is how many cards fit in a lane box of the given height. The
// gap after the last card is not needed.
func visibleCards(boxHeight int) int {
	rows := boxHeight - laneChrome
	if rows < cardHeight-1 {
		return 0
	}
	return (rows + 1) / cardHeight
}

func maxOffset(items, visible int) int {
	if items <= visible {
		return 0
	}
	return items - visible
}

// computeLayout places the three lanes side by side below the header. Card
// rows follow the order lanes.View gives, starting at offsets[i].
func computeLayout(c store.Collection, width, bodyHeight int, offsets [3]int) [3]laneBox {
	var boxes [3]laneBox
	colW := width / len(model.Lanes)
	for i, lane := range model.Lanes {
		w := colW
		if i == len(model.Lanes)-1 {
			w = width - colW*(len(model.Lanes)-1)
		}
		rect := surface.Rect{X: i * colW, Y: headerHeight, W: w, H: bodyHeight}
		items := lanes.View(c, lane)
		visible := visibleCards(rect.H)
		off := min(max(offsets[i], 0), maxOffset(len(items), visible))

		b := laneBox{lane: lane, rect: rect, items: items, offset: off}
		for k := 0; k < visible && off+k < len(items); k++ {
			b.cards = append(b.cards, cardBox{
				item: items[off+k],
				rect: surface.Rect{X: rect.X + 1, Y: rect.Y + 2 + k*cardHeight, W: max(rect.W-2, 0), H: cardHeight - 1},
			})
		}
		boxes[i] = b
	}
	return boxes
}

func cardElementID(itemID string) string { return "card-" + itemID }

// containerSpecs turns a layout into the surface tree the gesture engine
// hit-tests against.
func containerSpecs(boxes [3]laneBox) []surface.ContainerSpec {
	specs := make([]surface.ContainerSpec, 0, len(boxes))
	for _, b := range boxes {
		cs := surface.ContainerSpec{ID: drag.ContainerID(b.lane), Rect: b.rect}
		for _, cb := range b.cards {
			cs.Elements = append(cs.Elements, surface.ElementSpec{
				ID:    cardElementID(cb.item.ID),
				Attrs: map[string]string{drag.ItemAttr: cb.item.ID},
				Rect:  cb.rect,
			})
		}
		specs = append(specs, cs)
	}
	return specs
}
