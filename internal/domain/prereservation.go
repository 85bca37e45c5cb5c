package domain

import "time"

// PreReservationStatus represents the lifecycle state of a pre-reservation
type PreReservationStatus string

const (
	PreReservationWaiting    PreReservationStatus = "waiting"
	PreReservationConfirmed  PreReservationStatus = "confirmed"
	PreReservationExpired    PreReservationStatus = "expired"
	PreReservationSuperseded PreReservationStatus = "superseded"
)

// PreReservation is a provisional booking request held pending priority
// resolution. Terminal states are confirmed, expired and superseded.
// Once confirmed it exclusively owns the Mission created from it.
type PreReservation struct {
	ID         int64
	MemberID   int64
	AircraftID int64
	Interval   Interval
	Origin     string
	Destination string

	// PriorityPositionAtCreation freezes the member's queue position at the
	// moment the request was made; contention is resolved against it.
	PriorityPositionAtCreation int

	QuotedCost    float64
	Status        PreReservationStatus
	HoldExpiresAt time.Time

	// MissionID is set when the pre-reservation reaches confirmed.
	MissionID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if no further transitions are allowed
func (p *PreReservation) IsTerminal() bool {
	return p.Status != PreReservationWaiting
}

// IsHoldOverdue returns true if the hold period has elapsed
func (p *PreReservation) IsHoldOverdue(now time.Time) bool {
	return !now.Before(p.HoldExpiresAt)
}
