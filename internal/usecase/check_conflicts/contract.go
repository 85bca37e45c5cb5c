package check_conflicts

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
