package cancel_mission

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/service/missions/models"
)

// MissionService интерфейс сервиса миссий
type MissionService interface {
	Cancel(ctx context.Context, id int64, req *models.CancelMissionRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
