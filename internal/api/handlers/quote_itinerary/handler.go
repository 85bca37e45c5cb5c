package quote_itinerary

import (
	"errors"
	"net/http"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	quoteItinerary "github.com/m04kA/AFC-ReservationService/internal/usecase/quote_itinerary"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoLegs             = "маршрут не содержит ни одного сегмента"
	msgInvalidRange       = "некорректный интервал маршрута"
)

type Handler struct {
	useCase QuoteItineraryUseCase
	logger  Logger
}

func NewHandler(useCase QuoteItineraryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req quoteItinerary.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, quoteItinerary.ErrNoLegs):
			handlers.RespondBadRequest(w, msgNoLegs)

		case errors.Is(err, quoteItinerary.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, quoteItinerary.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /quotes - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quoted: total=%.2f, legs=%d", result.TotalCost, len(result.Legs))
	handlers.RespondJSON(w, http.StatusOK, result)
}
