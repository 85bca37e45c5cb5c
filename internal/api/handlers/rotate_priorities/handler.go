package rotate_priorities

import (
	"errors"
	"net/http"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/service/priorityqueue"
)

const msgQueueCorrupted = "очередь приоритетов повреждена, требуется вмешательство администратора"

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

// Handle POST /api/v1/priorities/rotate
// Вызывается планировщиком ровно раз в сутки; права проверяет API-шлюз
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Rotate(r.Context()); err != nil {
		switch {
		case errors.Is(err, priorityqueue.ErrQueueCorrupted):
			h.logger.Error("POST /priorities/rotate - Queue corrupted")
			handlers.RespondError(w, http.StatusConflict, msgQueueCorrupted)

		default:
			h.logger.Error("POST /priorities/rotate - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /priorities/rotate - Queue rotated")
	handlers.RespondNoContent(w)
}
