package priorityqueue

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	priorityRepo "github.com/m04kA/AFC-ReservationService/internal/infra/storage/priority"
	"github.com/m04kA/AFC-ReservationService/pkg/events"
)

// Service управляет очередью приоритетов участников клуба
// Инвариант перестановки 1..N проверяется после каждой операции;
// нарушение — фатальная ошибка, а не повод молча починить очередь
type Service struct {
	repo      QueueRepository
	publisher EventPublisher
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса очереди приоритетов
func NewService(repo QueueRepository, publisher EventPublisher, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		txManager: txManager,
		logger:    logger,
	}
}

// GetPosition возвращает текущую позицию участника
func (s *Service) GetPosition(ctx context.Context, memberID int64) (int, error) {
	position, err := s.repo.GetPosition(ctx, memberID)
	if err != nil {
		if errors.Is(err, priorityRepo.ErrMemberNotFound) {
			s.logger.Warn("GetPosition: member id=%d not in queue", memberID)
			return 0, ErrUnknownMember
		}
		s.logger.Error("GetPosition: repository error for member id=%d: %v", memberID, err)
		return 0, fmt.Errorf("%w: GetPosition: %v", ErrInternal, err)
	}
	return position, nil
}

// GetHolder возвращает участника, занимающего позицию
func (s *Service) GetHolder(ctx context.Context, position int) (int64, error) {
	if position < 1 {
		return 0, ErrInvalidPosition
	}

	memberID, err := s.repo.GetHolder(ctx, position)
	if err != nil {
		if errors.Is(err, priorityRepo.ErrPositionNotFound) {
			return 0, ErrPositionNotHeld
		}
		s.logger.Error("GetHolder: repository error for position=%d: %v", position, err)
		return 0, fmt.Errorf("%w: GetHolder: %v", ErrInternal, err)
	}
	return memberID, nil
}

// List возвращает всю очередь по возрастанию позиции
func (s *Service) List(ctx context.Context) ([]domain.PriorityEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}
	if !domain.ValidatePermutation(entries) {
		s.logger.Error("List: queue invariant violated, %d entries", len(entries))
		return nil, ErrQueueCorrupted
	}
	return entries, nil
}

// Rotate выполняет ровно одну ротацию очереди: первый уходит в хвост,
// остальные поднимаются. Вся перестановка — одно атомарное обновление
// в сериализуемой транзакции, частичная ротация снаружи не наблюдаема.
// Дисциплину "раз в сутки" обеспечивает внешний планировщик
func (s *Service) Rotate(ctx context.Context) error {
	var newHead int64
	var rotatedCount int

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		newHead, rotatedCount = 0, 0

		entries, err := s.repo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Rotate - list queue: %v", ErrInternal, err)
		}
		if len(entries) == 0 {
			s.logger.Warn("Rotate: queue is empty, nothing to rotate")
			return nil
		}
		if !domain.ValidatePermutation(entries) {
			return ErrQueueCorrupted
		}

		rotated := domain.RotatePriorities(entries)
		if !domain.ValidatePermutation(rotated) {
			return ErrQueueCorrupted
		}

		if err := s.repo.ReplaceAll(txCtx, rotated); err != nil {
			return fmt.Errorf("%w: Rotate - replace queue: %v", ErrInternal, err)
		}

		rotatedCount = len(rotated)
		for _, e := range rotated {
			if e.Position == domain.TopPriorityPosition {
				newHead = e.MemberID
				break
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrQueueCorrupted) {
			s.logger.Error("Rotate: queue corrupted, manual intervention required")
		}
		return err
	}

	// Событие публикуется только после фиксации транзакции
	if rotatedCount > 0 {
		if err := s.publisher.Publish(ctx, events.Event{
			Type:     events.TypePrioritiesRotated,
			MemberID: newHead,
			Payload:  map[string]interface{}{"members": rotatedCount, "newHeadMemberId": newHead},
		}); err != nil {
			s.logger.Warn("Rotate: failed to publish event: %v", err)
		}
	}

	s.logger.Info("Rotate: priority queue rotated, new head member=%d", newHead)
	return nil
}

// AdminOverride переставляет участника на новую позицию, сохраняя
// перестановку: разрыв закрывается, остальные сдвигаются вниз
func (s *Service) AdminOverride(ctx context.Context, memberID int64, newPosition int) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		entries, err := s.repo.List(txCtx)
		if err != nil {
			return fmt.Errorf("%w: AdminOverride - list queue: %v", ErrInternal, err)
		}
		if !domain.ValidatePermutation(entries) {
			return ErrQueueCorrupted
		}

		if newPosition < 1 || newPosition > len(entries) {
			return ErrInvalidPosition
		}

		overridden, ok := domain.OverridePriority(entries, memberID, newPosition)
		if !ok {
			return ErrUnknownMember
		}
		if !domain.ValidatePermutation(overridden) {
			return ErrQueueCorrupted
		}

		if err := s.repo.ReplaceAll(txCtx, overridden); err != nil {
			return fmt.Errorf("%w: AdminOverride - replace queue: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrQueueCorrupted) {
			s.logger.Error("AdminOverride: queue corrupted, manual intervention required")
		}
		return err
	}

	s.logger.Info("AdminOverride: member id=%d moved to position %d", memberID, newPosition)
	return nil
}
