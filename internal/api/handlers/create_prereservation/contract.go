package create_prereservation

import (
	"context"

	createPreReservation "github.com/m04kA/AFC-ReservationService/internal/usecase/create_prereservation"
)

// CreatePreReservationUseCase интерфейс use case создания пре-резервирования
type CreatePreReservationUseCase interface {
	Execute(ctx context.Context, req *createPreReservation.Request) (*createPreReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
