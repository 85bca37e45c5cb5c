package missions

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// MissionRepository интерфейс репозитория миссий
type MissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Mission, error)
	GetByAircraftWithFilter(ctx context.Context, filter domain.AircraftMissionsFilter) ([]*domain.Mission, error)
	GetByMemberID(ctx context.Context, memberID int64, status *domain.MissionStatus) ([]*domain.Mission, error)
	Cancel(ctx context.Context, id int64, reason string) error
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
