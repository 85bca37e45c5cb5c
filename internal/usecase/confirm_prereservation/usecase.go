package confirm_prereservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	preReservationRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/prereservation"
	memberClient "github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// SchedulingParams параметры движка расписания из конфигурации сервиса
type SchedulingParams struct {
	PreparationBuffer time.Duration
	ClosureBuffer     time.Duration
}

// UseCase use case для подтверждения пре-резервирования
type UseCase struct {
	preReservationRepo PreReservationRepository
	missionRepo        MissionRepository
	blockRepo          BlockRepository
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
		memberClient:       memberClient,
		publisher:          publisher,
		txManager:          txManager,
		params:             params,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет use case подтверждения пре-резервирования
// Подтверждение — единственный путь создания миссии. Перед созданием
// конфликты перепроверяются заново: между созданием пре-резервирования
// и подтверждением окно могли занять. Ожидающий участник с более высокой
// позицией в очереди блокирует подтверждение — честность разрешается
// на каждом переходе, а не только при создании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPreReservation: id=%d, member=%d", req.PreReservationID, req.MemberID)

	if req.PreReservationID <= 0 || req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Получаем участника: способ оплаты по умолчанию берется из профиля
	member, err := uc.memberClient.GetMember(ctx, req.MemberID)
	if err != nil {
		if errors.Is(err, memberClient.ErrMemberNotFound) {
			return nil, ErrAccessDenied
		}
		uc.logger.Error("ConfirmPreReservation: failed to get member id=%d: %v", req.MemberID, err)
		return nil, fmt.Errorf("%w: failed to get member: %v", ErrInternal, err)
	}

	paymentMethod := member.DefaultPaymentMethod
	if req.PaymentMethod != nil {
		paymentMethod = *req.PaymentMethod
	}

	var (
		result        *domain.Mission
		pre           *domain.PreReservation
		pendingEvents []events.Event

		// Отказ по бизнес-правилу — не откат: переходы в expired/superseded
		// должны зафиксироваться, поэтому такие ветки завершают транзакцию
		// успешно и сохраняют причину отказа отдельно
		refusal error
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		pendingEvents = pendingEvents[:0]
		refusal = nil

		// 2. Загружаем пре-резервирование с блокировкой FOR UPDATE
		loaded, err := uc.preReservationRepo.GetByID(txCtx, req.PreReservationID)
		if err != nil {
			if isNotFound(err) {
				return ErrPreReservationNotFound
			}
			return fmt.Errorf("%w: failed to get pre-reservation: %v", ErrInternal, err)
		}
		pre = loaded

		if pre.MemberID != req.MemberID {
			uc.logger.Warn("ConfirmPreReservation: access denied for member=%d to id=%d",
				req.MemberID, req.PreReservationID)
			return ErrAccessDenied
		}
		if pre.IsTerminal() {
			return ErrNotWaiting
		}

		// 3. Истекшее удержание подтверждать нельзя
		if pre.IsHoldOverdue(now) {
			if err := uc.expire(txCtx, pre, &pendingEvents, now); err != nil {
				return err
			}
			refusal = ErrHoldExpired
			return nil
		}

		// 4. Ожидающий конкурент с более высокой позицией уступает дорогу:
		// проигравшее окно пре-резервирование истекает, superseded
		// зарезервирован за отменой самим участником
		rivals, err := uc.preReservationRepo.FindWaitingOverlapping(txCtx, pre.AircraftID, pre.Interval, pre.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to find overlapping requests: %v", ErrInternal, err)
		}
		for _, rival := range rivals {
			if rival.PriorityPositionAtCreation < pre.PriorityPositionAtCreation {
				uc.logger.Warn("ConfirmPreReservation: id=%d yields to id=%d (position %d < %d)",
					pre.ID, rival.ID, rival.PriorityPositionAtCreation, pre.PriorityPositionAtCreation)
				if err := uc.expire(txCtx, pre, &pendingEvents, now); err != nil {
					return err
				}
				refusal = ErrSupersededByPriority
				return nil
			}
		}

		// 5. Перепроверяем конфликты: окно могли занять после создания
		fetchFrom := pre.Interval.Start.Add(-uc.params.ClosureBuffer)
		fetchTo := pre.Interval.End.Add(uc.params.PreparationBuffer)
		missions, err := uc.missionRepo.GetByAircraftWithFilter(txCtx, domain.AircraftMissionsFilter{
			AircraftID: pre.AircraftID,
			From:       &fetchFrom,
			To:         &fetchTo,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get missions: %v", ErrInternal, err)
		}
		blocks, err := uc.blockRepo.GetByAircraft(txCtx, pre.AircraftID, &pre.Interval.Start, &pre.Interval.End)
		if err != nil {
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		conflicts, err := scheduling.FindConflicts(pre.Interval, pre.AircraftID, missions, blocks,
			uc.params.PreparationBuffer, uc.params.ClosureBuffer)
		if err != nil {
			return fmt.Errorf("%w: conflict check: %v", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("ConfirmPreReservation: slot taken for id=%d, %d conflicts", pre.ID, len(conflicts))
			if err := uc.expire(txCtx, pre, &pendingEvents, now); err != nil {
				return err
			}
			refusal = ErrSlotTaken
			return nil
		}

		// 6. Списываем стоимость миссии
		if _, err := uc.memberClient.Debit(txCtx, pre.MemberID, memberClient.DebitRequest{
			Amount:        pre.QuotedCost,
			PaymentMethod: paymentMethod,
			Reference:     fmt.Sprintf("pre-reservation %d", pre.ID),
		}); err != nil {
			if errors.Is(err, memberClient.ErrInsufficientBalance) {
				uc.logger.Warn("ConfirmPreReservation: insufficient balance for member=%d, id=%d",
					pre.MemberID, pre.ID)
				if expireErr := uc.expire(txCtx, pre, &pendingEvents, now); expireErr != nil {
					return expireErr
				}
				refusal = ErrInsufficientBalance
				return nil
			}
			return fmt.Errorf("%w: debit failed: %v", ErrInternal, err)
		}

		// 7. Создаем подтвержденную миссию; судно занято до конца буфера закрытия
		created, err := uc.missionRepo.Create(txCtx, &domain.Mission{
			AircraftID:   pre.AircraftID,
			MemberID:     pre.MemberID,
			Interval:     pre.Interval,
			Origin:       pre.Origin,
			Destination:  pre.Destination,
			Status:       domain.StatusConfirmed,
			BlockedUntil: pre.Interval.End.Add(uc.params.ClosureBuffer),
			Cost:         pre.QuotedCost,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create mission: %v", ErrInternal, err)
		}

		// 8. Закрываем машину состояний: waiting -> confirmed
		if err := uc.preReservationRepo.Confirm(txCtx, pre.ID, created.ID); err != nil {
			return fmt.Errorf("%w: failed to confirm pre-reservation: %v", ErrInternal, err)
		}

		result = created
		pendingEvents = append(pendingEvents,
			events.Event{
				Type:       events.TypePreReservationConfirmed,
				AircraftID: pre.AircraftID,
				MemberID:   pre.MemberID,
				OccurredAt: now,
				Payload:    map[string]interface{}{"preReservationId": pre.ID, "missionId": created.ID},
			},
			events.Event{
				Type:       events.TypeMissionConfirmed,
				AircraftID: created.AircraftID,
				MemberID:   created.MemberID,
				OccurredAt: now,
				Payload:    map[string]interface{}{"missionId": created.ID, "cost": created.Cost},
			},
		)
		return nil
	})

	if err != nil {
		return nil, err
	}

	// События публикуются после фиксации транзакции, включая переходы
	// в expired/superseded на отказных ветках
	uc.publishAll(ctx, pendingEvents)

	if refusal != nil {
		return nil, refusal
	}

	uc.logger.Info("ConfirmPreReservation: id=%d confirmed, mission id=%d", pre.ID, result.ID)
	return fromDomain(pre.ID, result), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, preReservationRepo.ErrPreReservationNotFound)
}

// expire переводит пре-резервирование в expired внутри текущей транзакции
func (uc *UseCase) expire(ctx context.Context, pre *domain.PreReservation, pending *[]events.Event, now time.Time) error {
	if err := uc.preReservationRepo.UpdateStatus(ctx, pre.ID,
		domain.PreReservationWaiting, domain.PreReservationExpired); err != nil {
		return fmt.Errorf("%w: failed to expire: %v", ErrInternal, err)
	}
	*pending = append(*pending, events.Event{
		Type:       events.TypePreReservationExpired,
		AircraftID: pre.AircraftID,
		MemberID:   pre.MemberID,
		OccurredAt: now,
		Payload:    map[string]interface{}{"preReservationId": pre.ID},
	})
	return nil
}

func (uc *UseCase) publishAll(ctx context.Context, pending []events.Event) {
	for _, e := range pending {
		if err := uc.publisher.Publish(ctx, e); err != nil {
			uc.logger.Warn("ConfirmPreReservation: failed to publish event type=%s: %v", e.Type, err)
		}
	}
}
