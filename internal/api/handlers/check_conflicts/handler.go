package check_conflicts

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	checkConflicts "github.com/m04kA/AFC-ReservationService/internal/usecase/check_conflicts"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRange       = "некорректный временной диапазон"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	AircraftID int64     `json:"aircraftId" validate:"required,gt=0"`
	From       time.Time `json:"from" validate:"required"`
	To         time.Time `json:"to" validate:"required"`
}

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/conflicts/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /conflicts/check - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkConflicts.Request{
		AircraftID: req.AircraftID,
		From:       req.From,
		To:         req.To,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidRange),
			errors.Is(err, checkConflicts.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /conflicts/check - Failed: aircraft_id=%d, error=%v", req.AircraftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /conflicts/check - %d conflicts: aircraft_id=%d", len(result.Conflicts), req.AircraftID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
