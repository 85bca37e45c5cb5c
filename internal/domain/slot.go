package domain

import "time"

// SlotStatus represents the availability classification of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotBlocked   SlotStatus = "blocked"
	SlotInvalid   SlotStatus = "invalid"
)

// TimeSlot is a derived, read-only view over one fixed-granularity
// sub-interval of a queried range. Slots are never persisted; they are
// recomputed on every availability query and partition the queried range
// without gaps or overlaps.
type TimeSlot struct {
	Interval Interval
	Status   SlotStatus

	// RelatedMissionID is set when Status is SlotBooked.
	RelatedMissionID *int64

	// Reason explains a blocked slot (block reason or buffer note).
	Reason *string

	// NextAvailable is the next free instant implied by the binding
	// conflict, set for booked and blocked slots.
	NextAvailable *time.Time
}

// IsFree returns true if the slot can accept a new mission
func (s *TimeSlot) IsFree() bool {
	return s.Status == SlotAvailable
}
