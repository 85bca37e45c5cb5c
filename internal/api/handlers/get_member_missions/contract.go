package get_member_missions

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/service/missions/models"
)

// MissionService интерфейс сервиса миссий
type MissionService interface {
	GetMemberMissions(ctx context.Context, req *models.GetMemberMissionsRequest) (*models.MissionListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
