package check_conflicts

import (
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
)

// Request модель запроса проверки конфликтов
type Request struct {
	AircraftID int64     // ID воздушного судна
	From       time.Time // Начало предлагаемого интервала
	To         time.Time // Конец предлагаемого интервала
}

// ConflictItem один конфликтующий ресурс
type ConflictItem struct {
	MissionID     *int64    `json:"missionId,omitempty"`
	BlockID       *int64    `json:"blockId,omitempty"`
	OverlapKind   string    `json:"overlapKind"`
	NextAvailable time.Time `json:"nextAvailable"`
}

// Response результат проверки: пустой список конфликтов означает,
// что интервал можно бронировать
type Response struct {
	AircraftID    int64          `json:"aircraftId"`
	HasConflicts  bool           `json:"hasConflicts"`
	Conflicts     []ConflictItem `json:"conflicts"`
	NextAvailable *time.Time     `json:"nextAvailable,omitempty"`
}

func fromDomainConflicts(aircraftID int64, conflicts []scheduling.Conflict) *Response {
	items := make([]ConflictItem, 0, len(conflicts))
	for _, c := range conflicts {
		items = append(items, ConflictItem{
			MissionID:     c.MissionID,
			BlockID:       c.BlockID,
			OverlapKind:   string(c.OverlapKind),
			NextAvailable: c.NextAvailable,
		})
	}

	resp := &Response{
		AircraftID:   aircraftID,
		HasConflicts: len(items) > 0,
		Conflicts:    items,
	}
	// Конфликты отсортированы по nextAvailable, первый и есть ближайший
	if len(items) > 0 {
		resp.NextAvailable = &items[0].NextAvailable
	}
	return resp
}
