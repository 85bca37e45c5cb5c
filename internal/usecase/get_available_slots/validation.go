package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request) error {
	if req.AircraftID <= 0 {
		return fmt.Errorf("%w: aircraftId must be positive", ErrInvalidInput)
	}
	if !req.From.Before(req.To) {
		return ErrInvalidRange
	}
	if req.To.Sub(req.From) > time.Duration(domain.MaxQueryRangeDays)*24*time.Hour {
		return ErrRangeTooWide
	}
	if req.GranularityMinutes != nil {
		g := *req.GranularityMinutes
		if g < domain.MinSlotGranularityMinutes || g > domain.MaxSlotGranularityMinutes {
			return ErrInvalidGranularity
		}
	}
	return nil
}
