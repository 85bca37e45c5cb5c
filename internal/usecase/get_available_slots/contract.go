package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// MissionRepository интерфейс репозитория миссий
type MissionRepository interface {
	GetByAircraftWithFilter(ctx context.Context, filter domain.AircraftMissionsFilter) ([]*domain.Mission, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByAircraft(ctx context.Context, aircraftID int64, from, to *time.Time) ([]*domain.Block, error)
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
