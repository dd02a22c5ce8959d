// Package drag connects the gesture engine to the item store.
//
// A drop is only an intent. The engine's own move is reverted before the
// intent reaches the store, so the surface is changed by Render alone.
package drag

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/idilsaglam/swimlane/internal/gesture"
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/surface"
)

const (
	// ContainerSuffix marks a surface container id as a lane drop target.
	ContainerSuffix = "-lane"
	// ItemAttr is the element attribute that carries the item id.
	ItemAttr = "data-id"
)

var ErrLaneContainers = errors.New("drag: need exactly one container per lane")

// Engine is the part of the gesture engine the coordinator drives.
type Engine interface {
	Add(containers ...*surface.Container)
	On(fn func(gesture.DropEvent)) (unsubscribe func())
	Cancel(revert bool)
}

// ContainerID is the surface container id for lane.
func ContainerID(lane model.Lane) string { return string(lane) + ContainerSuffix }

// LaneKey resolves a container id such as "complete-lane" to its lane.
func LaneKey(containerID string) (model.Lane, bool) {
	key, ok := strings.CutSuffix(containerID, ContainerSuffix)
	if !ok {
		return "", false
	}
	return model.ParseLane(key)
}

// Coordinator routes drop events from an Engine to onDrop.
type Coordinator struct {
	engine Engine
	onDrop func(id string, lane model.Lane)
	logger *slog.Logger
	off    func()
}

// Attach registers the lane containers with engine and subscribes to its
// drops. containers must resolve to each lane exactly once.
func Attach(engine Engine, containers []*surface.Container, onDrop func(id string, lane model.Lane), logger *slog.Logger) (*Coordinator, error) {
	if len(containers) != len(model.Lanes) {
		return nil, fmt.Errorf("got %d containers: %w", len(containers), ErrLaneContainers)
	}
	seen := map[model.Lane]bool{}
	for _, c := range containers {
		if c == nil {
			return nil, fmt.Errorf("nil container: %w", ErrLaneContainers)
		}
		lane, ok := LaneKey(c.ID)
		if !ok || seen[lane] {
			return nil, fmt.Errorf("container %q: %w", c.ID, ErrLaneContainers)
		}
		seen[lane] = true
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	c := &Coordinator{engine: engine, onDrop: onDrop, logger: logger}
	engine.Add(containers...)
	c.off = engine.On(c.handleDrop)
	return c, nil
}

// Detach stops routing drops. Safe to call more than once.
func (c *Coordinator) Detach() {
	if c.off != nil {
		c.off()
		c.off = nil
	}
}

func (c *Coordinator) handleDrop(ev gesture.DropEvent) {
	if c.off == nil {
		return
	}
	var target string
	if ev.Target != nil {
		target = ev.Target.ID
	}
	lane, laneOK := LaneKey(target)
	var id string
	if ev.El != nil {
		id = ev.El.Attr(ItemAttr)
	}

	// The store re-renders the board; the engine's own move has to go first.
	c.engine.Cancel(true)

	if !laneOK || id == "" {
		c.logger.Debug("drop ignored", "target", target)
		return
	}
	c.onDrop(id, lane)
}
