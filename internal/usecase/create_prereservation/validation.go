package create_prereservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request, now time.Time) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.AircraftID <= 0 {
		return fmt.Errorf("%w: aircraftId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: origin and destination are required", ErrInvalidInput)
	}
	if req.QuotedCost < 0 {
		return fmt.Errorf("%w: quotedCost cannot be negative", ErrInvalidInput)
	}
	if !req.DepartureTime.Before(req.ReturnTime) {
		return ErrInvalidRange
	}
	if req.DepartureTime.Before(now) {
		return ErrDepartureInPast
	}
	if req.ReturnTime.Sub(req.DepartureTime) > time.Duration(domain.MaxMissionDurationHours)*time.Hour {
		return ErrMissionTooLong
	}
	return nil
}
