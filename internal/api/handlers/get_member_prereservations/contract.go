package get_member_prereservations

import (
	"context"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
)

// PreReservationProvider интерфейс выборки пре-резервирований участника
type PreReservationProvider interface {
	GetByMemberID(ctx context.Context, memberID int64, status *domain.PreReservationStatus) ([]*domain.PreReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
