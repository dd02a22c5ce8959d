package model

import "strings"

// Lane is one of the three fixed workflow stages.
type Lane string

const (
	LaneBacklog    Lane = "backlog"
	LaneInProgress Lane = "in-progress"
	LaneComplete   Lane = "complete"
)

// Lanes lists every lane in display order, left to right.
var Lanes = [...]Lane{LaneBacklog, LaneInProgress, LaneComplete}

// ParseLane resolves a lane key. Surrounding whitespace and case are ignored.
func ParseLane(s string) (Lane, bool) {
	l := Lane(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}

// Valid reports whether l is one of the three known lanes.
func (l Lane) Valid() bool {
	switch l {
	case LaneBacklog, LaneInProgress, LaneComplete:
		return true
	}
	return false
}

// Index is the lane's position in Lanes, or -1.
func (l Lane) Index() int {
	for i, x := range Lanes {
		if x == l {
			return i
		}
	}
	return -1
}

func (l Lane) Title() string {
	switch l {
	case LaneBacklog:
		return "Backlog"
	case LaneInProgress:
		return "In Progress"
	case LaneComplete:
		return "Complete"
	}
	return string(l)
}

func (l Lane) String() string { return string(l) }
