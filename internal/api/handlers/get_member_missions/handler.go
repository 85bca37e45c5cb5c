package get_member_missions

import (
	"errors"
	"net/http"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	"github.com/m04kA/AFC-ReservationService/internal/service/missions"
	"github.com/m04kA/AFC-ReservationService/internal/service/missions/models"
)

const msgInvalidStatus = "некорректный статус миссии"

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

// Handle GET /api/v1/missions?status=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "участник не аутентифицирован")
		return
	}

	req := &models.GetMemberMissionsRequest{MemberID: memberID}
	if raw := r.URL.Query().Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.GetMemberMissions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, missions.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /missions - Failed: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /missions - %d missions: member_id=%d", result.Total, memberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
