package cancel_mission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	"github.com/m04kA/AFC-ReservationService/internal/service/missions"
	"github.com/m04kA/AFC-ReservationService/internal/service/missions/models"
)

const (
	msgInvalidID          = "некорректный идентификатор миссии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "миссия не найдена"
	msgAccessDenied       = "доступ запрещен"
	msgCannotCancel       = "миссия не может быть отменена"
)

// CancelMissionRequest HTTP request model
type CancelMissionRequest struct {
	CancellationReason string `json:"cancellationReason" validate:"required,max=500"`
}

type Handler struct {
	service MissionService
	logger  Logger
}

func NewHandler(service MissionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/missions/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "участник не аутентифицирован")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req CancelMissionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /missions/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), id, &models.CancelMissionRequest{
		MemberID:           memberID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, missions.ErrMissionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, missions.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, missions.ErrCannotCancel):
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, missions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /missions/{id}/cancel - Failed: id=%d, member_id=%d, error=%v",
				id, memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /missions/{id}/cancel - Cancelled: id=%d, member_id=%d", id, memberID)
	handlers.RespondNoContent(w)
}
