package confirm_prereservation

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/AFC-ReservationService/internal/api/handlers"
	"github.com/m04kA/AFC-ReservationService/internal/api/middleware"
	confirmPreReservation "github.com/m04kA/AFC-ReservationService/internal/usecase/confirm_prereservation"
)

const (
	msgInvalidID            = "некорректный идентификатор пре-резервирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "пре-резервирование не найдено"
	msgAccessDenied         = "доступ запрещен"
	msgNotWaiting           = "пре-резервирование уже обработано"
	msgHoldExpired          = "срок удержания истек"
	msgSlotTaken            = "окно уже занято другим бронированием"
	msgSuperseded           = "на это окно ожидает участник с более высоким приоритетом"
	msgInsufficientBalance  = "недостаточно средств на счете"
)

// ConfirmPreReservationRequest HTTP request model; тело опционально
type ConfirmPreReservationRequest struct {
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}

type Handler struct {
	useCase ConfirmPreReservationUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPreReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/prereservations/{id}/confirm
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

	var req ConfirmPreReservationRequest
	if decodeErr := handlers.DecodeJSON(r, &req); decodeErr != nil && !errors.Is(decodeErr, io.EOF) {
		h.logger.Warn("POST /prereservations/{id}/confirm - Invalid request body: %v", decodeErr)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPreReservation.Request{
		PreReservationID: id,
		MemberID:         memberID,
		PaymentMethod:    req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPreReservation.ErrPreReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPreReservation.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, confirmPreReservation.ErrNotWaiting):
			handlers.RespondError(w, http.StatusConflict, msgNotWaiting)

		case errors.Is(err, confirmPreReservation.ErrHoldExpired):
			h.logger.Warn("POST /prereservations/{id}/confirm - Hold expired: id=%d, member_id=%d", id, memberID)
			handlers.RespondError(w, http.StatusGone, msgHoldExpired)

		case errors.Is(err, confirmPreReservation.ErrSlotTaken):
			h.logger.Warn("POST /prereservations/{id}/confirm - Slot taken: id=%d, member_id=%d", id, memberID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, confirmPreReservation.ErrSupersededByPriority):
			h.logger.Warn("POST /prereservations/{id}/confirm - Superseded: id=%d, member_id=%d", id, memberID)
			handlers.RespondError(w, http.StatusConflict, msgSuperseded)

		case errors.Is(err, confirmPreReservation.ErrInsufficientBalance):
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientBalance)

		case errors.Is(err, confirmPreReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidID)

		default:
			h.logger.Error("POST /prereservations/{id}/confirm - Failed: id=%d, member_id=%d, error=%v",
				id, memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /prereservations/{id}/confirm - Confirmed: id=%d, mission_id=%d, member_id=%d",
		id, result.MissionID, memberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
