package block

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

// Repository репозиторий для работы с блокировками администратора
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую блокировку
func (r *Repository) Create(ctx context.Context, b *domain.Block) (*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocks").
		Columns("aircraft_id", "start_time", "end_time", "reason").
		Values(b.AircraftID, b.Interval.Start, b.Interval.End, b.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByAircraft получает блокировки судна, пересекающие указанный период
func (r *Repository) GetByAircraft(ctx context.Context, aircraftID int64, from, to *time.Time) ([]*domain.Block, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "aircraft_id", "start_time", "end_time", "reason", "created_at").
		From("blocks").
		Where(squirrel.Eq{"aircraft_id": aircraftID}).
		OrderBy("start_time ASC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *from})
	}
	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *to})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAircraft - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAircraft - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.Block, 0)
	for rows.Next() {
		var b domain.Block
		var createdAt sql.NullTime
		if err := rows.Scan(&b.ID, &b.AircraftID, &b.Interval.Start, &b.Interval.End, &b.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByAircraft - scan row: %v", ErrScanRow, err)
		}
		b.Interval.Start = b.Interval.Start.UTC()
		b.Interval.End = b.Interval.End.UTC()
		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByAircraft - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete удаляет блокировку (блокировки, в отличие от миссий,
// снимаются администратором явно)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBlockNotFound
	}
	return nil
}
