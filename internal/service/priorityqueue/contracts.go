package priorityqueue

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// QueueRepository интерфейс репозитория очереди приоритетов
type QueueRepository interface {
	List(ctx context.Context) ([]domain.PriorityEntry, error)
	GetPosition(ctx context.Context, memberID int64) (int, error)
	GetHolder(ctx context.Context, position int) (int64, error)
	ReplaceAll(ctx context.Context, entries []domain.PriorityEntry) error
}

// EventPublisher интерфейс для публикации событий очереди
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
