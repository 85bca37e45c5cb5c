package get_available_slots

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// Request модель запроса доступных слотов
type Request struct {
	AircraftID         int64     // ID воздушного судна
	From               time.Time // Начало запрошенного диапазона
	To                 time.Time // Конец запрошенного диапазона
	GranularityMinutes *int      // Шаг сетки в минутах (опционально, по умолчанию 30)
}

// Slot один слот календаря
type Slot struct {
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	Status           string     `json:"status"`
	RelatedMissionID *int64     `json:"relatedMissionId,omitempty"`
	Reason           *string    `json:"reason,omitempty"`
	NextAvailable    *time.Time `json:"nextAvailable,omitempty"`
}

// Response модель ответа со слотами
type Response struct {
	AircraftID int64  `json:"aircraftId"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	Slots      []Slot `json:"slots"`
}

func fromDomainSlots(aircraftID int64, query domain.Interval, slots []domain.TimeSlot) *Response {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			Start:            s.Interval.Start,
			End:              s.Interval.End,
			Status:           string(s.Status),
			RelatedMissionID: s.RelatedMissionID,
			Reason:           s.Reason,
			NextAvailable:    s.NextAvailable,
		})
	}
	return &Response{
		AircraftID: aircraftID,
		From:       query.Start,
		To:         query.End,
		Slots:      out,
	}
}
