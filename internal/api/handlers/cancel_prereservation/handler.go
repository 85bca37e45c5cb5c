package cancel_prereservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	cancelPreReservation "github.com/m04kA/AFC-ReservationService/internal/usecase/cancel_prereservation"
)

const (
	msgInvalidID    = "некорректный идентификатор пре-резервирования"
	msgNotFound     = "пре-резервирование не найдено"
	msgAccessDenied = "доступ запрещен"
	msgNotWaiting   = "пре-резервирование уже обработано"
)

type Handler struct {
	useCase CancelPreReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelPreReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/prereservations/{id}/cancel
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

	err = h.useCase.Execute(r.Context(), &cancelPreReservation.Request{
		PreReservationID: id,
		MemberID:         memberID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelPreReservation.ErrPreReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelPreReservation.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cancelPreReservation.ErrNotWaiting):
			handlers.RespondError(w, http.StatusConflict, msgNotWaiting)

		case errors.Is(err, cancelPreReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("PATCH /prereservations/{id}/cancel - Failed: id=%d, member_id=%d, error=%v",
				id, memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /prereservations/{id}/cancel - Cancelled: id=%d, member_id=%d", id, memberID)
	handlers.RespondNoContent(w)
}
