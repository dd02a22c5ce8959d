package model

// Item is the domain model for a client card on the board.
// Lane is the only field that changes once the item is loaded.
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Lane        Lane   `json:"lane" yaml:"lane"`
}

// WithLane returns a copy of the item assigned to lane.
func (i Item) WithLane(lane Lane) Item {
	i.Lane = lane
	return i
}
