package resolve_holds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	memberClient "github.com/m04kA/AFC-ReservationService/internal/integrations/memberservice"
	"github.com/m04kA/AFC-ReservationService/internal/scheduling"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// Исходы обработки одного просроченного удержания
const (
	OutcomeConfirmed = "confirmed"
	OutcomeExpired   = "expired"
	OutcomeSkipped   = "skipped"
	OutcomeError     = "error"
)

// SchedulingParams параметры движка расписания из конфигурации сервиса
type SchedulingParams struct {
	PreparationBuffer time.Duration
	ClosureBuffer     time.Duration
	BatchLimit        uint64
}

// Summary итог одного прохода развертки
type Summary struct {
	Processed int `json:"processed"`
	Confirmed int `json:"confirmed"`
	Expired   int `json:"expired"`
	Errors    int `json:"errors"`
}

// UseCase use case автоматического разрешения просроченных удержаний
type UseCase struct {
	preReservationRepo PreReservationRepository
	missionRepo        MissionRepository
	blockRepo          BlockRepository
	memberClient       MemberServiceClient
	publisher          EventPublisher
	txManager          TransactionManager
	metrics            SweepMetrics
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
	metrics SweepMetrics,
	params SchedulingParams,
	logger Logger,
) *UseCase {
	if params.BatchLimit == 0 {
		params.BatchLimit = 100
	}
	return &UseCase{
		preReservationRepo: preReservationRepo,
		missionRepo:        missionRepo,
		blockRepo:          blockRepo,
		memberClient:       memberClient,
		publisher:          publisher,
		txManager:          txManager,
		metrics:            metrics,
		params:             params,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выполняет один проход развертки просроченных удержаний
// Просроченные ожидающие пре-резервирования обрабатываются по возрастанию
// позиции приоритета, каждое в своей сериализуемой транзакции: сбой на
// одном не останавливает остальные. Участник с действующим членством и
// достаточным балансом подтверждается автоматически, иначе удержание
// истекает и окно освобождается
func (uc *UseCase) Execute(ctx context.Context) (*Summary, error) {
	now := uc.timeProvider.Now()

	overdue, err := uc.preReservationRepo.ListOverdueWaiting(ctx, now, uc.params.BatchLimit)
	if err != nil {
		uc.logger.Error("ResolveHolds: failed to list overdue holds: %v", err)
		return nil, fmt.Errorf("%w: failed to list overdue holds: %v", ErrInternal, err)
	}
	if len(overdue) == 0 {
		return &Summary{}, nil
	}

	uc.logger.Info("ResolveHolds: %d overdue holds to resolve", len(overdue))

	summary := &Summary{}
	for _, pre := range overdue {
		outcome := uc.resolveOne(ctx, pre.ID, now)
		uc.metrics.ObserveSweepOutcome(outcome)
		summary.Processed++
		switch outcome {
		case OutcomeConfirmed:
			summary.Confirmed++
		case OutcomeExpired:
			summary.Expired++
		case OutcomeError:
			summary.Errors++
		}
	}

	uc.logger.Info("ResolveHolds: processed=%d confirmed=%d expired=%d errors=%d",
		summary.Processed, summary.Confirmed, summary.Expired, summary.Errors)
	return summary, nil
}

// resolveOne обрабатывает одно просроченное удержание в отдельной транзакции
func (uc *UseCase) resolveOne(ctx context.Context, id int64, now time.Time) string {
	var (
		outcome       = OutcomeSkipped
		pendingEvents []events.Event
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		pendingEvents = pendingEvents[:0]
		outcome = OutcomeSkipped

		// Перечитываем под блокировкой: статус мог измениться между
		// выборкой списка и этой транзакцией
		pre, err := uc.preReservationRepo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to get pre-reservation id=%d: %v", id, err)
		}
		if pre.IsTerminal() || !pre.IsHoldOverdue(now) {
			return nil
		}

		// Среди просроченных конкурентов на одно окно побеждает лучшая
		// позиция: остальные уступают и истекают
		rivals, err := uc.preReservationRepo.FindWaitingOverlapping(txCtx, pre.AircraftID, pre.Interval, pre.ID)
		if err != nil {
			return fmt.Errorf("failed to find overlapping requests: %v", err)
		}
		for _, rival := range rivals {
			if rival.PriorityPositionAtCreation < pre.PriorityPositionAtCreation {
				return uc.expire(txCtx, pre, &pendingEvents, &outcome, now)
			}
		}

		// Окно могли занять с момента создания пре-резервирования
		fetchFrom := pre.Interval.Start.Add(-uc.params.ClosureBuffer)
		fetchTo := pre.Interval.End.Add(uc.params.PreparationBuffer)
		missions, err := uc.missionRepo.GetByAircraftWithFilter(txCtx, domain.AircraftMissionsFilter{
			AircraftID: pre.AircraftID,
			From:       &fetchFrom,
			To:         &fetchTo,
		})
		if err != nil {
			return fmt.Errorf("failed to get missions: %v", err)
		}
		blocks, err := uc.blockRepo.GetByAircraft(txCtx, pre.AircraftID, &pre.Interval.Start, &pre.Interval.End)
		if err != nil {
			return fmt.Errorf("failed to get blocks: %v", err)
		}
		conflicts, err := scheduling.FindConflicts(pre.Interval, pre.AircraftID, missions, blocks,
			uc.params.PreparationBuffer, uc.params.ClosureBuffer)
		if err != nil {
			return fmt.Errorf("conflict check: %v", err)
		}
		if len(conflicts) > 0 {
			return uc.expire(txCtx, pre, &pendingEvents, &outcome, now)
		}

		// Вылет в прошлом подтверждать бессмысленно
		if !pre.Interval.Start.After(now) {
			return uc.expire(txCtx, pre, &pendingEvents, &outcome, now)
		}

		// Автоподтверждение: действующее членство и успешное списание
		member, err := uc.memberClient.GetMember(txCtx, pre.MemberID)
		if err != nil || !member.IsActive {
			return uc.expire(txCtx, pre, &pendingEvents, &outcome, now)
		}
		if _, err := uc.memberClient.Debit(txCtx, pre.MemberID, memberClient.DebitRequest{
			Amount:        pre.QuotedCost,
			PaymentMethod: member.DefaultPaymentMethod,
			Reference:     fmt.Sprintf("pre-reservation %d", pre.ID),
		}); err != nil {
			if errors.Is(err, memberClient.ErrInsufficientBalance) {
				return uc.expire(txCtx, pre, &pendingEvents, &outcome, now)
			}
			return fmt.Errorf("debit failed: %v", err)
		}

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
			return fmt.Errorf("failed to create mission: %v", err)
		}
		if err := uc.preReservationRepo.Confirm(txCtx, pre.ID, created.ID); err != nil {
			return fmt.Errorf("failed to confirm: %v", err)
		}

		outcome = OutcomeConfirmed
		pendingEvents = append(pendingEvents,
			events.Event{
				Type:       events.TypePreReservationConfirmed,
				AircraftID: pre.AircraftID,
				MemberID:   pre.MemberID,
				OccurredAt: now,
				Payload:    map[string]interface{}{"preReservationId": pre.ID, "missionId": created.ID, "autoConfirmed": true},
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
		uc.logger.Error("ResolveHolds: failed to resolve id=%d: %v", id, err)
		return OutcomeError
	}

	for _, e := range pendingEvents {
		if err := uc.publisher.Publish(ctx, e); err != nil {
			uc.logger.Warn("ResolveHolds: failed to publish event type=%s: %v", e.Type, err)
		}
	}
	return outcome
}

// expire переводит ожидающее пре-резервирование в expired
func (uc *UseCase) expire(
	ctx context.Context,
	pre *domain.PreReservation,
	pending *[]events.Event,
	outcome *string,
	now time.Time,
) error {
	if err := uc.preReservationRepo.UpdateStatus(ctx, pre.ID,
		domain.PreReservationWaiting, domain.PreReservationExpired); err != nil {
		return fmt.Errorf("failed to expire id=%d: %v", pre.ID, err)
	}
	*outcome = OutcomeExpired

	uc.logger.Info("ResolveHolds: pre-reservation id=%d -> %s", pre.ID, domain.PreReservationExpired)
	*pending = append(*pending, events.Event{
		Type:       events.TypePreReservationExpired,
		AircraftID: pre.AircraftID,
		MemberID:   pre.MemberID,
		OccurredAt: now,
		Payload:    map[string]interface{}{"preReservationId": pre.ID},
	})
	return nil
}
