package get_mission

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/service/missions/models"
)

// MissionService интерфейс сервиса миссий
type MissionService interface {
	GetByID(ctx context.Context, id int64, memberID int64) (*models.MissionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
