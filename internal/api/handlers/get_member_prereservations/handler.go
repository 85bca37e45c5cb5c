package get_member_prereservations

import (
	"net/http"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/ptr"
)

const msgInvalidStatus = "некорректный статус пре-резервирования"

// PreReservationItem HTTP response model
type PreReservationItem struct {
	ID               int64     `json:"id"`
	AircraftID       int64     `json:"aircraftId"`
	DepartureTime    time.Time `json:"departureTime"`
	ReturnTime       time.Time `json:"returnTime"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	PriorityPosition int       `json:"priorityPosition"`
	QuotedCost       float64   `json:"quotedCost"`
	Status           string    `json:"status"`
	HoldExpiresAt    time.Time `json:"holdExpiresAt"`
	MissionID        *int64    `json:"missionId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PreReservationListResponse список пре-резервирований участника
type PreReservationListResponse struct {
	PreReservations []PreReservationItem `json:"preReservations"`
	Total           int                  `json:"total"`
}

type Handler struct {
	provider PreReservationProvider
	logger   Logger
}

func NewHandler(provider PreReservationProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/prereservations?status=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, ok := middleware.MemberIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "участник не аутентифицирован")
		return
	}

	var status *domain.PreReservationStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := domain.PreReservationStatus(raw)
		switch s {
		case domain.PreReservationWaiting, domain.PreReservationConfirmed,
			domain.PreReservationExpired, domain.PreReservationSuperseded:
			status = ptr.Ptr(s)
		default:
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
	}

	items, err := h.provider.GetByMemberID(r.Context(), memberID, status)
	if err != nil {
		h.logger.Error("GET /prereservations - Failed: member_id=%d, error=%v", memberID, err)
		handlers.RespondInternalError(w)
		return
	}

	resp := PreReservationListResponse{PreReservations: make([]PreReservationItem, 0, len(items))}
	for _, p := range items {
		resp.PreReservations = append(resp.PreReservations, PreReservationItem{
			ID:               p.ID,
			AircraftID:       p.AircraftID,
			DepartureTime:    p.Interval.Start,
			ReturnTime:       p.Interval.End,
			Origin:           p.Origin,
			Destination:      p.Destination,
			PriorityPosition: p.PriorityPositionAtCreation,
			QuotedCost:       p.QuotedCost,
			Status:           string(p.Status),
			HoldExpiresAt:    p.HoldExpiresAt,
			MissionID:        p.MissionID,
			CreatedAt:        p.CreatedAt,
		})
	}
	resp.Total = len(resp.PreReservations)

	h.logger.Info("GET /prereservations - %d items: member_id=%d", resp.Total, memberID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
