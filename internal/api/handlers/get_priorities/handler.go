package get_priorities

import (
	"net/http"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
)

// PriorityEntryItem HTTP response model
type PriorityEntryItem struct {
	MemberID int64 `json:"memberId"`
	Position int   `json:"position"`
}

// PriorityListResponse очередь приоритетов целиком
type PriorityListResponse struct {
	Entries []PriorityEntryItem `json:"entries"`
	Total   int                 `json:"total"`
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

// Handle GET /api/v1/priorities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /priorities - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := PriorityListResponse{Entries: make([]PriorityEntryItem, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, PriorityEntryItem{MemberID: e.MemberID, Position: e.Position})
	}
	resp.Total = len(resp.Entries)

	handlers.RespondJSON(w, http.StatusOK, resp)
}
