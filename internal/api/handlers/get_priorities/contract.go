package get_priorities

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// PriorityQueueService интерфейс сервиса очереди приоритетов
type PriorityQueueService interface {
	List(ctx context.Context) ([]domain.PriorityEntry, error)
	GetPosition(ctx context.Context, memberID int64) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
