package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/AFC-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidAircraftID  = "некорректный идентификатор воздушного судна"
	msgInvalidQueryParams = "некорректные параметры from/to, ожидается RFC3339"
	msgInvalidRange       = "некорректный временной диапазон"
	msgRangeTooWide       = "запрошенный диапазон слишком велик"
	msgInvalidGranularity = "некорректный шаг сетки слотов"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/aircraft/{aircraftId}/slots?from=...&to=...&granularityMinutes=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	aircraftID, err := strconv.ParseInt(mux.Vars(r)["aircraftId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /aircraft/{id}/slots - Invalid aircraft id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAircraftID)
		return
	}

	query := r.URL.Query()
	from, errFrom := time.Parse(time.RFC3339, query.Get("from"))
	to, errTo := time.Parse(time.RFC3339, query.Get("to"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /aircraft/{id}/slots - Invalid query params: from=%q, to=%q",
			query.Get("from"), query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	req := &getAvailableSlots.Request{
		AircraftID: aircraftID,
		From:       from,
		To:         to,
	}
	if raw := query.Get("granularityMinutes"); raw != "" {
		granularity, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidGranularity)
			return
		}
		req.GranularityMinutes = &granularity
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailableSlots.ErrRangeTooWide):
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, getAvailableSlots.ErrInvalidGranularity):
			handlers.RespondBadRequest(w, msgInvalidGranularity)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAircraftID)

		default:
			h.logger.Error("GET /aircraft/{id}/slots - Failed: aircraft_id=%d, error=%v", aircraftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /aircraft/{id}/slots - %d slots returned: aircraft_id=%d", len(result.Slots), aircraftID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
