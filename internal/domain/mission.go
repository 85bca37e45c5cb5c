package domain

import "time"

// MissionStatus represents the status of a mission
type MissionStatus string

const (
	StatusConfirmed MissionStatus = "confirmed"
	StatusCancelled MissionStatus = "cancelled"
)

// Mission represents a confirmed or in-progress flight of a club aircraft.
// Missions are never deleted: cancellation is a status transition, so that
// historical conflict audits stay possible.
type Mission struct {
	ID         int64
	AircraftID int64
	MemberID   int64
	Interval   Interval
	Origin     string
	Destination string
	Status     MissionStatus

	// BlockedUntil is always Interval.End + closure buffer: the instant
	// after which the aircraft is usable again.
	BlockedUntil time.Time

	Cost               float64
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the mission still occupies its window
func (m *Mission) IsActive() bool {
	return m.Status == StatusConfirmed
}

// CanBeCancelled returns true if the mission can be cancelled
func (m *Mission) CanBeCancelled() bool {
	return m.Status == StatusConfirmed
}

// AircraftMissionsFilter фильтр для выборки миссий одного воздушного судна
type AircraftMissionsFilter struct {
	AircraftID      int64      // Обязательный параметр
	From            *time.Time // Начало периода (опционально)
	To              *time.Time // Конец периода (опционально)
	Status          *MissionStatus
	IncludeInactive bool // Включать ли отменённые миссии
}
