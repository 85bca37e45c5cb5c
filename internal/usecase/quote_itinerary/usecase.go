package quote_itinerary

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/AFC-ReservationService/internal/pricing"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// UseCase use case расчета стоимости маршрута
// Оборачивает чистый калькулятор валидацией входа; расчет детерминирован
// и не трогает базу, поэтому транзакция не нужна
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute выполняет use case расчета стоимости
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteItinerary: %d legs, base=%s", len(req.Legs), req.BaseAirport)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteItinerary: validation failed: %v", err)
		return nil, err
	}

	legs := make([]pricing.Leg, 0, len(req.Legs))
	for _, l := range req.Legs {
		legs = append(legs, pricing.Leg{
			From:        l.From,
			To:          l.To,
			FlightHours: l.FlightHours,
			AirportFee:  l.AirportFee,
		})
	}

	breakdown := pricing.PriceItinerary(legs, pricing.Params{
		HourlyRate:    req.HourlyRate,
		OvernightRate: req.OvernightRate,
		BaseAirport:   req.BaseAirport,
		AirportFees:   req.AirportFees,
		DepartureTime: req.DepartureTime,
		ReturnTime:    req.ReturnTime,
	})

	return fromBreakdown(breakdown), nil
}

// validateRequest проверяет базовую корректность запроса
func validateRequest(req *Request) error {
	if len(req.Legs) == 0 {
		return ErrNoLegs
	}
	if strings.TrimSpace(req.BaseAirport) == "" {
		return fmt.Errorf("%w: baseAirport is required", ErrInvalidInput)
	}
	if req.HourlyRate < 0 || req.OvernightRate < 0 {
		return fmt.Errorf("%w: rates cannot be negative", ErrInvalidInput)
	}
	if !req.DepartureTime.Before(req.ReturnTime) {
		return ErrInvalidRange
	}
	for i, l := range req.Legs {
		if strings.TrimSpace(l.From) == "" || strings.TrimSpace(l.To) == "" {
			return fmt.Errorf("%w: leg %d is missing airports", ErrInvalidInput, i)
		}
		if l.FlightHours <= 0 {
			return fmt.Errorf("%w: leg %d has non-positive flight hours", ErrInvalidInput, i)
		}
		if l.AirportFee < 0 {
			return fmt.Errorf("%w: leg %d has negative airport fee", ErrInvalidInput, i)
		}
	}
	return nil
}
