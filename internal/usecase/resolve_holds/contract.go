package resolve_holds

import (
	"context"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// PreReservationRepository интерфейс репозитория пре-резервирований
type PreReservationRepository interface {
	ListOverdueWaiting(ctx context.Context, now time.Time, limit uint64) ([]*domain.PreReservation, error)
	GetByID(ctx context.Context, id int64) (*domain.PreReservation, error)
	FindWaitingOverlapping(ctx context.Context, aircraftID int64, interval domain.Interval, excludeID int64) ([]*domain.PreReservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.PreReservationStatus) error
	Confirm(ctx context.Context, id, missionID int64) error
}

// MissionRepository интерфейс репозитория миссий
type MissionRepository interface {
	Create(ctx context.Context, m *domain.Mission) (*domain.Mission, error)
	GetByAircraftWithFilter(ctx context.Context, filter domain.AircraftMissionsFilter) ([]*domain.Mission, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByAircraft(ctx context.Context, aircraftID int64, from, to *time.Time) ([]*domain.Block, error)
}

// MemberServiceClient интерфейс клиента для MemberService
type MemberServiceClient interface {
	GetMember(ctx context.Context, memberID int64) (*memberservice.Member, error)
	Debit(ctx context.Context, memberID int64, debit memberservice.DebitRequest) (*memberservice.DebitResponse, error)
}

// EventPublisher интерфейс для публикации доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// SweepMetrics счетчики исходов автоматического разрешения удержаний
type SweepMetrics interface {
	ObserveSweepOutcome(outcome string)
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
