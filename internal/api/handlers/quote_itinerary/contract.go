package quote_itinerary

import (
	"context"

	quoteItinerary "github.com/m04kA/AFC-ReservationService/internal/usecase/quote_itinerary"
)

// QuoteItineraryUseCase интерфейс use case расчета стоимости маршрута
type QuoteItineraryUseCase interface {
	Execute(ctx context.Context, req *quoteItinerary.Request) (*quoteItinerary.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
