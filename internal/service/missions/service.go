package missions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	missionRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/mission"
	"github.com/m04kA/AFC-ReservationService/internal/service/missions/models"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// Service сервис для работы с миссиями
type Service struct {
	missionRepo MissionRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса миссий
func NewService(missionRepo MissionRepository, publisher EventPublisher, logger Logger) *Service {
	return &Service{
		missionRepo: missionRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает миссию по ID
// Участник может видеть только свою миссию
func (s *Service) GetByID(ctx context.Context, id int64, memberID int64) (*models.MissionResponse, error) {
	s.logger.Info("GetByID: fetching mission id=%d for member=%d", id, memberID)

	mission, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, missionRepo.ErrMissionNotFound) {
			s.logger.Warn("GetByID: mission id=%d not found", id)
			return nil, ErrMissionNotFound
		}
		s.logger.Error("GetByID: repository error for mission id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if mission.MemberID != memberID {
		s.logger.Warn("GetByID: access denied for member=%d to mission id=%d", memberID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainMission(mission), nil
}

// GetMemberMissions получает историю миссий участника
// Опционально фильтрует по статусу
func (s *Service) GetMemberMissions(ctx context.Context, req *models.GetMemberMissionsRequest) (*models.MissionListResponse, error) {
	s.logger.Info("GetMemberMissions: fetching missions for member=%d, status=%v", req.MemberID, req.Status)

	var domainStatus *domain.MissionStatus
	if req.Status != nil {
		status, err := models.ToDomainMissionStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMemberMissions: invalid status=%s for member=%d", *req.Status, req.MemberID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	missions, err := s.missionRepo.GetByMemberID(ctx, req.MemberID, domainStatus)
	if err != nil {
		s.logger.Error("GetMemberMissions: repository error for member=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: GetMemberMissions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMissionList(missions), nil
}

// GetAircraftMissions получает миссии воздушного судна за период
func (s *Service) GetAircraftMissions(ctx context.Context, req *models.GetAircraftMissionsRequest) (*models.MissionListResponse, error) {
	s.logger.Info("GetAircraftMissions: fetching missions for aircraft=%d", req.AircraftID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	missions, err := s.missionRepo.GetByAircraftWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAircraftMissions: repository error for aircraft=%d: %v", req.AircraftID, err)
		return nil, fmt.Errorf("%w: GetAircraftMissions - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainMissionList(missions), nil
}

// Cancel отменяет миссию участника
// Миссия не удаляется: отмена — переход статуса, окно судна освобождается
// и на следующем расчете слотов становится доступным
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelMissionRequest) error {
	s.logger.Info("Cancel: cancelling mission id=%d by member=%d", id, req.MemberID)

	reason := strings.TrimSpace(req.CancellationReason)
	if reason == "" {
		return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
	}

	mission, err := s.missionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, missionRepo.ErrMissionNotFound) {
			return ErrMissionNotFound
		}
		s.logger.Error("Cancel: repository error for mission id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if mission.MemberID != req.MemberID {
		s.logger.Warn("Cancel: access denied for member=%d to mission id=%d", req.MemberID, id)
		return ErrAccessDenied
	}

	if !mission.CanBeCancelled() {
		return ErrCannotCancel
	}

	if err := s.missionRepo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, missionRepo.ErrCannotCancel) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel mission id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: mission id=%d cancelled", id)

	// Публикация события — best-effort, ошибка не откатывает отмену
	if err := s.publisher.Publish(ctx, events.Event{
		Type:       events.TypeMissionCancelled,
		AircraftID: mission.AircraftID,
		MemberID:   mission.MemberID,
		OccurredAt: time.Now().UTC(),
		Payload: map[string]interface{}{
			"missionId": mission.ID,
			"reason":    reason,
		},
	}); err != nil {
		s.logger.Warn("Cancel: failed to publish event for mission id=%d: %v", id, err)
	}

	return nil
}
