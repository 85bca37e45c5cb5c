package check_conflicts

import (
	"context"

	checkConflicts "github.com/m04kA/AFC-ReservationService/internal/usecase/check_conflicts"
)

// CheckConflictsUseCase интерфейс use case проверки конфликтов
type CheckConflictsUseCase interface {
	Execute(ctx context.Context, req *checkConflicts.Request) (*checkConflicts.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
