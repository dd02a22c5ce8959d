package model

// SeedRow is one raw row of static seed data. Lane is the raw lane key and may
// be empty, in which case the item starts in the backlog.
type SeedRow struct {
	ID          string
	Name        string
	Description string
	Lane        string
}
