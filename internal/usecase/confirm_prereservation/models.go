package confirm_prereservation

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// Request модель запроса на подтверждение пре-резервирования
type Request struct {
	PreReservationID int64   // ID пре-резервирования
	MemberID         int64   // ID участника (владелец)
	PaymentMethod    *string // Способ оплаты (опционально, по умолчанию метод участника)
}

// Response модель ответа с созданной миссией
type Response struct {
	PreReservationID int64     `json:"preReservationId"`
	MissionID        int64     `json:"missionId"`
	AircraftID       int64     `json:"aircraftId"`
	MemberID         int64     `json:"memberId"`
	DepartureTime    time.Time `json:"departureTime"`
	ReturnTime       time.Time `json:"returnTime"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Status           string    `json:"status"`
	BlockedUntil     time.Time `json:"blockedUntil"`
	Cost             float64   `json:"cost"`
}

func fromDomain(preReservationID int64, m *domain.Mission) *Response {
	return &Response{
		PreReservationID: preReservationID,
		MissionID:        m.ID,
		AircraftID:       m.AircraftID,
		MemberID:         m.MemberID,
		DepartureTime:    m.Interval.Start,
		ReturnTime:       m.Interval.End,
		Origin:           m.Origin,
		Destination:      m.Destination,
		Status:           string(m.Status),
		BlockedUntil:     m.BlockedUntil,
		Cost:             m.Cost,
	}
}
