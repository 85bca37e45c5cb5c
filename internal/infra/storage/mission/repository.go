package mission

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/AFC-ReservationService/pkg/psqlbuilder"
)

var missionColumns = []string{
	"id",
	"aircraft_id",
	"member_id",
	"start_time",
	"end_time",
	"origin",
	"destination",
	"status",
	"blocked_until",
	"cost",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с миссиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория миссий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую миссию
// Если в контексте передана активная транзакция, использует её —
// создание миссии при подтверждении пре-резервирования обязано идти
// в одной транзакции с повторной проверкой конфликтов
func (r *Repository) Create(ctx context.Context, m *domain.Mission) (*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("missions").
		Columns(
			"aircraft_id",
			"member_id",
			"start_time",
			"end_time",
			"origin",
			"destination",
			"status",
			"blocked_until",
			"cost",
		).
		Values(
			m.AircraftID,
			m.MemberID,
			m.Interval.Start,
			m.Interval.End,
			m.Origin,
			m.Destination,
			m.Status,
			m.BlockedUntil,
			m.Cost,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time

	return m, nil
}

// GetByID получает миссию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(missionColumns...).
		From("missions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	missions, err := r.scanMissions(rows)
	if err != nil {
		return nil, err
	}
	if len(missions) == 0 {
		return nil, ErrMissionNotFound
	}
	return missions[0], nil
}

// GetByAircraftWithFilter получает миссии судна с гибкой фильтрацией
// по периоду, статусу и включению отменённых.
//
// Внутри транзакции при фильтре по периоду добавляется FOR UPDATE:
// это единственное место, где нужна настоящая взаимная блокировка —
// два конкурентных подтверждения не должны оба "выиграть" одно окно
func (r *Repository) GetByAircraftWithFilter(ctx context.Context, filter domain.AircraftMissionsFilter) ([]*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(missionColumns...).
		From("missions").
		Where(squirrel.Eq{"aircraft_id": filter.AircraftID})

	// Берём миссии, чьё окно пересекает период запроса; сравнение по
	// blocked_until захватывает и буфер закрытия
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"blocked_until": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveMissionStatuses))
		for i, s := range domain.InactiveMissionStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAircraftWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAircraftWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanMissions(rows)
}

// GetByMemberID получает миссии участника, сначала свежие
func (r *Repository) GetByMemberID(ctx context.Context, memberID int64, status *domain.MissionStatus) ([]*domain.Mission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(missionColumns...).
		From("missions").
		Where(squirrel.Eq{"member_id": memberID}).
		OrderBy("start_time DESC")

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

	return r.scanMissions(rows)
}

// Cancel отменяет миссию с указанием причины
// Физическое удаление не поддерживается: история нужна для аудита конфликтов
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("missions").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.ActiveMissionStatuses}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCannotCancel
	}
	return nil
}

// scanMissions сканирует результаты запроса в слайс миссий
func (r *Repository) scanMissions(rows *sql.Rows) ([]*domain.Mission, error) {
	missions := make([]*domain.Mission, 0)

	for rows.Next() {
		var m domain.Mission
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&m.ID,
			&m.AircraftID,
			&m.MemberID,
			&m.Interval.Start,
			&m.Interval.End,
			&m.Origin,
			&m.Destination,
			&m.Status,
			&m.BlockedUntil,
			&m.Cost,
			&m.CancellationReason,
			&m.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanMissions - scan row: %v", ErrScanRow, err)
		}

		m.Interval.Start = m.Interval.Start.UTC()
		m.Interval.End = m.Interval.End.UTC()
		m.BlockedUntil = m.BlockedUntil.UTC()
		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time

		missions = append(missions, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanMissions - rows error: %v", ErrScanRow, err)
	}

	return missions, nil
}
