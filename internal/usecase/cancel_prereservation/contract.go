package cancel_prereservation

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// PreReservationRepository интерфейс репозитория пре-резервирований
type PreReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.PreReservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.PreReservationStatus) error
}

// EventPublisher интерфейс для публикации доменных событий
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
