package check_conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
)

// SchedulingParams параметры движка расписания из конфигурации сервиса
type SchedulingParams struct {
	PreparationBuffer time.Duration
	ClosureBuffer     time.Duration
}

// UseCase use case для проверки предлагаемого интервала на конфликты
type UseCase struct {
	missionRepo MissionRepository
	blockRepo   BlockRepository
	params      SchedulingParams
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	missionRepo MissionRepository,
	blockRepo   BlockRepository,
	params SchedulingParams,
	logger Logger,
) *UseCase {
	return &UseCase{
		missionRepo: missionRepo,
		blockRepo:   blockRepo,
		params:      params,
		logger:      logger,
	}
}

// Execute выполняет use case проверки конфликтов
// Занятость — нормальный исход: ответ с конфликтами не является ошибкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: aircraft=%d, from=%s, to=%s",
		req.AircraftID, req.From.Format(time.RFC3339), req.To.Format(time.RFC3339))

	if req.AircraftID <= 0 {
		return nil, fmt.Errorf("%w: aircraftId must be positive", ErrInvalidInput)
	}

	proposed, ok := domain.NewInterval(req.From, req.To)
	if !ok {
		uc.logger.Warn("CheckConflicts: invalid range for aircraft=%d", req.AircraftID)
		return nil, ErrInvalidRange
	}

	// Выборка миссий расширяется буферами: миссия за границей интервала
	// может затенять его своим буферным окном
	fetchFrom := proposed.Start.Add(-uc.params.ClosureBuffer)
	fetchTo := proposed.End.Add(uc.params.PreparationBuffer)
	missions, err := uc.missionRepo.GetByAircraftWithFilter(ctx, domain.AircraftMissionsFilter{
		AircraftID: req.AircraftID,
		From:       &fetchFrom,
		To:         &fetchTo,
	})
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to get missions for aircraft=%d: %v", req.AircraftID, err)
		return nil, fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByAircraft(ctx, req.AircraftID, &proposed.Start, &proposed.End)
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to get blocks for aircraft=%d: %v", req.AircraftID, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	conflicts, err := scheduling.FindConflicts(proposed, req.AircraftID, missions, blocks,
		uc.params.PreparationBuffer, uc.params.ClosureBuffer)
	if err != nil {
		return nil, ErrInvalidRange
	}

	uc.logger.Info("CheckConflicts: aircraft=%d, %d conflicts found", req.AircraftID, len(conflicts))
	return fromDomainConflicts(req.AircraftID, conflicts), nil
}
