package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
)

// SchedulingParams параметры движка расписания из конфигурации сервиса
type SchedulingParams struct {
	PreparationBuffer  time.Duration
	ClosureBuffer      time.Duration
	DefaultGranularity time.Duration
}

// UseCase use case для получения календаря доступности воздушного судна
type UseCase struct {
	missionRepo  MissionRepository
	blockRepo    BlockRepository
	params       SchedulingParams
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	missionRepo MissionRepository,
	blockRepo BlockRepository,
	params SchedulingParams,
	logger Logger,
) *UseCase {
	return &UseCase{
		missionRepo:  missionRepo,
		blockRepo:    blockRepo,
		params:       params,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
// Миссии и блокировки загружаются один раз на запрос, дальше расчет чистый.
// Выборка миссий расширяется буфером подготовки влево и закрытия вправо,
// чтобы миссия за границей диапазона все равно затенила его край
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: aircraft=%d, from=%s, to=%s",
		req.AircraftID, req.From.Format(time.RFC3339), req.To.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	query, ok := domain.NewInterval(req.From, req.To)
	if !ok {
		return nil, ErrInvalidRange
	}

	granularity := uc.params.DefaultGranularity
	if req.GranularityMinutes != nil {
		granularity = time.Duration(*req.GranularityMinutes) * time.Minute
	}

	// 2. Загружаем активные миссии, задевающие диапазон с учетом буферов
	fetchFrom := query.Start.Add(-uc.params.ClosureBuffer)
	fetchTo := query.End.Add(uc.params.PreparationBuffer)
	missions, err := uc.missionRepo.GetByAircraftWithFilter(ctx, domain.AircraftMissionsFilter{
		AircraftID: req.AircraftID,
		From:       &fetchFrom,
		To:         &fetchTo,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get missions for aircraft=%d: %v", req.AircraftID, err)
		return nil, fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
	}

	// 3. Загружаем блокировки администратора (точные, без буферов)
	blocks, err := uc.blockRepo.GetByAircraft(ctx, req.AircraftID, &query.Start, &query.End)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks for aircraft=%d: %v", req.AircraftID, err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 4. Классифицируем слоты
	slots, err := scheduling.GetSlots(req.AircraftID, query, missions, blocks, scheduling.SlotParams{
		Granularity: granularity,
		Preparation: uc.params.PreparationBuffer,
		Closure:     uc.params.ClosureBuffer,
		Now:         uc.timeProvider.Now(),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot engine error: %v", err)
		return nil, fmt.Errorf("%w: slot engine: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: aircraft=%d, %d slots computed", req.AircraftID, len(slots))
	return fromDomainSlots(req.AircraftID, query, slots), nil
}
