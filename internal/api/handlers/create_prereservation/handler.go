package create_prereservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	createPreReservation "github.com/m04kA/AFC-ReservationService/internal/usecase/create_prereservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMemberNotFound     = "участник не найден"
	msgMemberInactive     = "членство участника приостановлено"
	msgMemberNotInQueue   = "участник отсутствует в очереди приоритетов"
	msgSlotNotAvailable   = "запрошенное окно недоступно"
	msgInvalidRange       = "некорректный временной интервал миссии"
	msgDepartureInPast    = "время вылета уже прошло"
	msgMissionTooLong     = "длительность миссии превышает допустимую"
)

// CreatePreReservationRequest HTTP request model
type CreatePreReservationRequest struct {
	AircraftID    int64     `json:"aircraftId" validate:"required,gt=0"`
	DepartureTime time.Time `json:"departureTime" validate:"required"`
	ReturnTime    time.Time `json:"returnTime" validate:"required"`
	Origin        string    `json:"origin" validate:"required"`
	Destination   string    `json:"destination" validate:"required"`
	QuotedCost    float64   `json:"quotedCost" validate:"gte=0"`
}

type Handler struct {
	useCase CreatePreReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreatePreReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/prereservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "участник не аутентифицирован")
		return
	}

	var req CreatePreReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /prereservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /prereservations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createPreReservation.Request{
		MemberID:      memberID,
		AircraftID:    req.AircraftID,
		DepartureTime: req.DepartureTime,
		ReturnTime:    req.ReturnTime,
		Origin:        req.Origin,
		Destination:   req.Destination,
		QuotedCost:    req.QuotedCost,
	})
	if err != nil {
		switch {
		case errors.Is(err, createPreReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /prereservations - Slot not available: member_id=%d, aircraft_id=%d",
				memberID, req.AircraftID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createPreReservation.ErrMemberNotFound):
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, createPreReservation.ErrMemberInactive):
			handlers.RespondForbidden(w, msgMemberInactive)

		case errors.Is(err, createPreReservation.ErrMemberNotInQueue):
			handlers.RespondForbidden(w, msgMemberNotInQueue)

		case errors.Is(err, createPreReservation.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createPreReservation.ErrDepartureInPast):
			handlers.RespondBadRequest(w, msgDepartureInPast)

		case errors.Is(err, createPreReservation.ErrMissionTooLong):
			handlers.RespondBadRequest(w, msgMissionTooLong)

		case errors.Is(err, createPreReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /prereservations - Failed: member_id=%d, aircraft_id=%d, error=%v",
				memberID, req.AircraftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prereservations - Created: id=%d, member_id=%d, aircraft_id=%d",
		result.ID, memberID, req.AircraftID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
