package domain

import "time"

// Block represents an administrator-imposed unavailability window for an
// aircraft (maintenance, inspections, grounding). Blocks have no buffer
// semantics of their own: buffers apply only to missions.
type Block struct {
	ID         int64
	AircraftID int64
	Interval   Interval
	Reason     string
	CreatedAt  time.Time
}
