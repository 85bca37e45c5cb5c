package create_prereservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	priorityRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/priority"
	memberClient "github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// SchedulingParams параметры движка расписания из конфигурации сервиса
type SchedulingParams struct {
	PreparationBuffer time.Duration
	ClosureBuffer     time.Duration
	HoldDuration      time.Duration
}

// UseCase use case для создания пре-резервирования
type UseCase struct {
	preReservationRepo PreReservationRepository
	missionRepo        MissionRepository
	blockRepo          BlockRepository
	priorityRepo       PriorityRepository
	memberClient       MemberServiceClient
	publisher          EventPublisher
	txManager          TransactionManager
	params             SchedulingParams
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	preReservationRepo PreReservationRepository,
	missionRepo MissionRepository,
	blockRepo BlockRepository,
	priorityRepo PriorityRepository,
	memberClient MemberServiceClient,
	publisher EventPublisher,
	txManager TransactionManager,
	params SchedulingParams,
	logger Logger,
) *UseCase {
	return &UseCase{
		preReservationRepo: preReservationRepo,
		missionRepo:        missionRepo,
		blockRepo:          blockRepo,
		priorityRepo:       priorityRepo,
		memberClient:       memberClient,
		publisher:          publisher,
		txManager:          txManager,
		params:             params,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case создания пре-резервирования
// Пре-резервирование создается всегда в статусе waiting: даже участник
// с позицией 1 проходит через подтверждение, чтобы конкурентные запросы
// на одно окно сериализовались через одну и ту же машину состояний
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreatePreReservation: member=%d, aircraft=%d, departure=%s, return=%s",
		req.MemberID, req.AircraftID,
		req.DepartureTime.Format(time.RFC3339), req.ReturnTime.Format(time.RFC3339))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreatePreReservation: validation failed: %v", err)
		return nil, err
	}

	interval, ok := domain.NewInterval(req.DepartureTime, req.ReturnTime)
	if !ok {
		return nil, ErrInvalidRange
	}

	// 2. Проверяем участника
	member, err := uc.memberClient.GetMember(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			uc.logger.Warn("CreatePreReservation: member id=%d not found", req.MemberID)
			return nil, ErrMemberNotFound
		}
		uc.logger.Error("CreatePreReservation: failed to get member id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}
	if !member.IsActive {
		uc.logger.Warn("CreatePreReservation: member id=%d is inactive", req.MemberID)
		return nil, ErrMemberInactive
	}

	var result *domain.PreReservation

	// 3. Проверка конфликтов и создание — в сериализуемой транзакции,
	// чтобы два конкурентных запроса на одно окно не прошли оба
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Позиция участника в очереди приоритетов фиксируется на момент запроса
		position, err := uc.priorityRepo.GetPosition(txCtx, req.MemberID)
		if err != nil {
			if errors.Is(err, priorityRepo.ErrMemberNotFound) {
				uc.logger.Warn("CreatePreReservation: member id=%d not in priority queue", req.MemberID)
				return ErrMemberNotInQueue
			}
			return fmt.Errorf("%w: failed to get priority position: %v", ErrInternal, err)
		}

		// 3.2. Загружаем миссии с блокировкой FOR UPDATE и проверяем конфликты
		fetchFrom := interval.Start.Add(-uc.params.ClosureBuffer)
		fetchTo := interval.End.Add(uc.params.PreparationBuffer)
		missions, err := uc.missionRepo.GetByAircraftWithFilter(txCtx, domain.AircraftMissionsFilter{
			AircraftID: req.AircraftID,
			From:       &fetchFrom,
			To:         &fetchTo,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetByAircraft(txCtx, req.AircraftID, &interval.Start, &interval.End)
		if err != nil {
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		conflicts, err := scheduling.FindConflicts(interval, req.AircraftID, missions, blocks,
			uc.params.PreparationBuffer, uc.params.ClosureBuffer)
		if err != nil {
			return ErrInvalidRange
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("CreatePreReservation: slot not available for aircraft=%d, %d conflicts",
				req.AircraftID, len(conflicts))
			return ErrSlotNotAvailable
		}

		// 3.3. Создаем пре-резервирование с 12-часовым удержанием
		created, err := uc.preReservationRepo.Create(txCtx, &domain.PreReservation{
			MemberID:                   req.MemberID,
			AircraftID:                 req.AircraftID,
			Interval:                   interval,
			Origin:                     req.Origin,
			Destination:                req.Destination,
			PriorityPositionAtCreation: position,
			QuotedCost:                 req.QuotedCost,
			Status:                     domain.PreReservationWaiting,
			HoldExpiresAt:              now.Add(uc.params.HoldDuration),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create pre-reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreatePreReservation: created id=%d, position=%d, hold until %s",
		result.ID, result.PriorityPositionAtCreation, result.HoldExpiresAt.Format(time.RFC3339))

	// 4. Публикация события — best-effort
	if err := uc.publisher.Publish(ctx, events.Event{
		Type:       events.TypePreReservationCreated,
		AircraftID: result.AircraftID,
		MemberID:   result.MemberID,
		OccurredAt: now,
		Payload: map[string]interface{}{
			"preReservationId": result.ID,
			"holdExpiresAt":    result.HoldExpiresAt,
		},
	}); err != nil {
		uc.logger.Warn("CreatePreReservation: failed to publish event for id=%d: %v", result.ID, err)
	}

	return fromDomain(result), nil
}
