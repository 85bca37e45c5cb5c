package prereservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/AFC-ReservationService/pkg/psqlbuilder"
)

var preReservationColumns = []string{
	"id",
	"member_id",
	"aircraft_id",
	"start_time",
	"end_time",
	"origin",
	"destination",
	"priority_position",
	"quoted_cost",
	"status",
	"hold_expires_at",
	"mission_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пре-резервированиями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пре-резервирований
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое пре-резервирование в статусе waiting
func (r *Repository) Create(ctx context.Context, p *domain.PreReservation) (*domain.PreReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pre_reservations").
		Columns(
			"member_id",
			"aircraft_id",
			"start_time",
			"end_time",
			"origin",
			"destination",
			"priority_position",
			"quoted_cost",
			"status",
			"hold_expires_at",
		).
		Values(
			p.MemberID,
			p.AircraftID,
			p.Interval.Start,
			p.Interval.End,
			p.Origin,
			p.Destination,
			p.PriorityPositionAtCreation,
			p.QuotedCost,
			p.Status,
			p.HoldExpiresAt,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает пре-резервирование по ID
// Внутри транзакции строка блокируется FOR UPDATE: все переходы статуса
// идут через повторную проверку конфликтов под блокировкой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PreReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(preReservationColumns...).
		From("pre_reservations").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items, err := r.scanPreReservations(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrPreReservationNotFound
	}
	return items[0], nil
}

// GetByMemberID получает пре-резервирования участника, сначала свежие
func (r *Repository) GetByMemberID(ctx context.Context, memberID int64, status *domain.PreReservationStatus) ([]*domain.PreReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(preReservationColumns...).
		From("pre_reservations").
		Where(squirrel.Eq{"member_id": memberID}).
		OrderBy("created_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMemberID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMemberID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPreReservations(rows)
}

// FindWaitingOverlapping находит ожидающие пре-резервирования того же
// судна, которые действительно пересекают интервал. Используется для
// проверки справедливости: подтвердиться может только запрос участника
// с численно меньшей позицией приоритета
func (r *Repository) FindWaitingOverlapping(ctx context.Context, aircraftID int64, interval domain.Interval, excludeID int64) ([]*domain.PreReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(preReservationColumns...).
		From("pre_reservations").
		Where(squirrel.Eq{"aircraft_id": aircraftID}).
		Where(squirrel.Eq{"status": domain.PreReservationWaiting}).
		Where(squirrel.NotEq{"id": excludeID}).
		Where(squirrel.Lt{"start_time": interval.End}).
		Where(squirrel.Gt{"end_time": interval.Start}).
		OrderBy("priority_position ASC, created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindWaitingOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindWaitingOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPreReservations(rows)
}

// ListOverdueWaiting возвращает ожидающие пре-резервирования с истёкшим
// холдом, отсортированные по позиции приоритета: сначала разрешаются
// запросы участников с высшим приоритетом
func (r *Repository) ListOverdueWaiting(ctx context.Context, now time.Time, limit uint64) ([]*domain.PreReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(preReservationColumns...).
		From("pre_reservations").
		Where(squirrel.Eq{"status": domain.PreReservationWaiting}).
		Where(squirrel.LtOrEq{"hold_expires_at": now}).
		OrderBy("priority_position ASC, created_at ASC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverdueWaiting - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOverdueWaiting - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanPreReservations(rows)
}

// UpdateStatus переводит пре-резервирование из ожидаемого статуса в новый.
// Переход проверяет текущий статус: если строка уже изменена конкурентно,
// возвращается ErrStaleStatus
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.PreReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pre_reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// Confirm переводит пре-резервирование в confirmed и привязывает миссию
func (r *Repository) Confirm(ctx context.Context, id, missionID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pre_reservations").
		Set("status", domain.PreReservationConfirmed).
		Set("mission_id", missionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.PreReservationWaiting}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Confirm - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Confirm - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaleStatus
	}
	return nil
}

// scanPreReservations сканирует результаты запроса в слайс пре-резервирований
func (r *Repository) scanPreReservations(rows *sql.Rows) ([]*domain.PreReservation, error) {
	items := make([]*domain.PreReservation, 0)

	for rows.Next() {
		var p domain.PreReservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.MemberID,
			&p.AircraftID,
			&p.Interval.Start,
			&p.Interval.End,
			&p.Origin,
			&p.Destination,
			&p.PriorityPositionAtCreation,
			&p.QuotedCost,
			&p.Status,
			&p.HoldExpiresAt,
			&p.MissionID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPreReservations - scan row: %v", ErrScanRow, err)
		}

		p.Interval.Start = p.Interval.Start.UTC()
		p.Interval.End = p.Interval.End.UTC()
		p.HoldExpiresAt = p.HoldExpiresAt.UTC()
		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time

		items = append(items, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPreReservations - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
