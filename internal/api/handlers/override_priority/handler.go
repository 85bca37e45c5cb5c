package override_priority

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/service/priorityqueue"
)

const (
	msgInvalidMemberID    = "некорректный идентификатор участника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownMember      = "участник отсутствует в очереди приоритетов"
	msgInvalidPosition    = "некорректная целевая позиция"
	msgQueueCorrupted     = "очередь приоритетов повреждена, требуется вмешательство администратора"
)

// OverridePriorityRequest HTTP request model
type OverridePriorityRequest struct {
	NewPosition int `json:"newPosition" validate:"required,gt=0"`
}

type Handler struct {
	service PriorityQueueService
	logger  Logger
}

func NewHandler(service PriorityQueueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/priorities/{memberId}
// Административная операция; права проверяет API-шлюз
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, err := strconv.ParseInt(mux.Vars(r)["memberId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	var req OverridePriorityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /priorities/{memberId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.AdminOverride(r.Context(), memberID, req.NewPosition)
	if err != nil {
		switch {
		case errors.Is(err, priorityqueue.ErrUnknownMember):
			handlers.RespondNotFound(w, msgUnknownMember)

		case errors.Is(err, priorityqueue.ErrInvalidPosition):
			handlers.RespondBadRequest(w, msgInvalidPosition)

		case errors.Is(err, priorityqueue.ErrQueueCorrupted):
			h.logger.Error("PUT /priorities/{memberId} - Queue corrupted")
			handlers.RespondError(w, http.StatusConflict, msgQueueCorrupted)

		default:
			h.logger.Error("PUT /priorities/{memberId} - Failed: member_id=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /priorities/{memberId} - Member %d moved to position %d", memberID, req.NewPosition)
	handlers.RespondNoContent(w)
}
