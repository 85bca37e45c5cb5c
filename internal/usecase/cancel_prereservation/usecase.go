package cancel_prereservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	preReservationRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/prereservation"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// Request модель запроса на отмену пре-резервирования
type Request struct {
	PreReservationID int64 // ID пре-резервирования
	MemberID         int64 // ID участника (владелец)
}

// UseCase use case для отмены ожидающего пре-резервирования
type UseCase struct {
	preReservationRepo PreReservationRepository
	publisher          EventPublisher
	txManager          TransactionManager
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	preReservationRepo PreReservationRepository,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		preReservationRepo: preReservationRepo,
		publisher:          publisher,
		txManager:          txManager,
		logger:             logger,
	}
}

// Execute выполняет use case отмены пре-резервирования
// Отменить можно только ожидающее пре-резервирование: подтвержденное
// отменяется через отмену созданной из него миссии
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelPreReservation: id=%d, member=%d", req.PreReservationID, req.MemberID)

	if req.PreReservationID <= 0 || req.MemberID <= 0 {
		return fmt.Errorf("%w: ids must be positive", ErrInvalidInput)
	}

	var pre *domain.PreReservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		loaded, err := uc.preReservationRepo.GetByID(txCtx, req.PreReservationID)
		if err != nil {
			if errors.Is(err, preReservationRepo.ErrPreReservationNotFound) {
				return ErrPreReservationNotFound
			}
			return fmt.Errorf("%w: failed to get pre-reservation: %v", ErrInternal, err)
		}
		pre = loaded

		if pre.MemberID != req.MemberID {
			uc.logger.Warn("CancelPreReservation: access denied for member=%d to id=%d",
				req.MemberID, req.PreReservationID)
			return ErrAccessDenied
		}
		if pre.IsTerminal() {
			return ErrNotWaiting
		}

		if err := uc.preReservationRepo.UpdateStatus(txCtx, pre.ID,
			domain.PreReservationWaiting, domain.PreReservationSuperseded); err != nil {
			if errors.Is(err, preReservationRepo.ErrStaleStatus) {
				return ErrNotWaiting
			}
			return fmt.Errorf("%w: failed to cancel: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("CancelPreReservation: id=%d cancelled", pre.ID)

	if err := uc.publisher.Publish(ctx, events.Event{
		Type:       events.TypePreReservationSuperseded,
		AircraftID: pre.AircraftID,
		MemberID:   pre.MemberID,
		OccurredAt: time.Now().UTC(),
		Payload:    map[string]interface{}{"preReservationId": pre.ID, "cancelledByMember": true},
	}); err != nil {
		uc.logger.Warn("CancelPreReservation: failed to publish event for id=%d: %v", pre.ID, err)
	}

	return nil
}
