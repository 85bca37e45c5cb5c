package create_prereservation

import (
	"context"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// PreReservationRepository интерфейс репозитория пре-резервирований
type PreReservationRepository interface {
	Create(ctx context.Context, p *domain.PreReservation) (*domain.PreReservation, error)
}

// MissionRepository интерфейс репозитория миссий
type MissionRepository interface {
	GetByAircraftWithFilter(ctx context.Context, filter domain.AircraftMissionsFilter) ([]*domain.Mission, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByAircraft(ctx context.Context, aircraftID int64, from, to *time.Time) ([]*domain.Block, error)
}

// PriorityRepository интерфейс репозитория очереди приоритетов
type PriorityRepository interface {
	GetPosition(ctx context.Context, memberID int64) (int, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMember(ctx context.Context, memberID int64) (*memberservice.Member, error)
}

// EventPublisher интерфейс для публикации доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
