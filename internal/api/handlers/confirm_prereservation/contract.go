package confirm_prereservation

import (
	"context"

	confirmPreReservation "github.com/m04kA/AFC-ReservationService/internal/usecase/confirm_prereservation"
)

// ConfirmPreReservationUseCase интерфейс use case подтверждения пре-резервирования
type ConfirmPreReservationUseCase interface {
	Execute(ctx context.Context, req *confirmPreReservation.Request) (*confirmPreReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
