package cancel_prereservation

import (
	"context"

	cancelPreReservation "github.com/m04kA/AFC-ReservationService/internal/usecase/cancel_prereservation"
)

// CancelPreReservationUseCase интерфейс use case отмены пре-резервирования
type CancelPreReservationUseCase interface {
	Execute(ctx context.Context, req *cancelPreReservation.Request) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
