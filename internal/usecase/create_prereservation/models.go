package create_prereservation

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// Request модель запроса на создание пре-резервирования
type Request struct {
	MemberID      int64     // ID участника клуба
	AircraftID    int64     // ID воздушного судна
	DepartureTime time.Time // Время вылета
	ReturnTime    time.Time // Время возврата
	Origin        string    // Аэропорт вылета (ICAO)
	Destination   string    // Аэропорт назначения (ICAO)
	QuotedCost    float64   // Стоимость миссии по расчету
}

// Response модель ответа с созданным пре-резервированием
type Response struct {
	ID               int64     `json:"id"`
	MemberID         int64     `json:"memberId"`
	AircraftID       int64     `json:"aircraftId"`
	DepartureTime    time.Time `json:"departureTime"`
	ReturnTime       time.Time `json:"returnTime"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	PriorityPosition int       `json:"priorityPosition"`
	QuotedCost       float64   `json:"quotedCost"`
	Status           string    `json:"status"`
	HoldExpiresAt    time.Time `json:"holdExpiresAt"`
	CreatedAt        time.Time `json:"createdAt"`

	// CanConfirmImmediately подсказывает форме бронирования, что участник
	// держит первую позицию и подтверждение пройдет без ожидания конкурентов
	CanConfirmImmediately bool `json:"canConfirmImmediately"`
}

func fromDomain(p *domain.PreReservation) *Response {
	return &Response{
		ID:               p.ID,
		MemberID:         p.MemberID,
		AircraftID:       p.AircraftID,
		DepartureTime:    p.Interval.Start,
		ReturnTime:       p.Interval.End,
		Origin:           p.Origin,
		Destination:      p.Destination,
		PriorityPosition: p.PriorityPositionAtCreation,
		QuotedCost:       p.QuotedCost,
		Status:           string(p.Status),
		HoldExpiresAt:    p.HoldExpiresAt,
		CreatedAt:        p.CreatedAt,

		CanConfirmImmediately: p.PriorityPositionAtCreation == domain.TopPriorityPosition,
	}
}
