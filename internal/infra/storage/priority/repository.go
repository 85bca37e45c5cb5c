package priority

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/AFC-ReservationService/internal/domain"
	"github.com/m04kA/AFC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/AFC-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий очереди приоритетов
// Очередь хранится как целочисленная позиция в строке участника;
// все перестановки выполняются через ReplaceAll в одной транзакции,
// чтобы частичная ротация никогда не была видна снаружи
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория очереди
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все записи очереди по возрастанию позиции
// Внутри транзакции строки блокируются FOR UPDATE
func (r *Repository) List(ctx context.Context) ([]domain.PriorityEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("member_id", "position").
		From("priority_queue").
		OrderBy("position ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]domain.PriorityEntry, 0)
	for rows.Next() {
		var e domain.PriorityEntry
		if err := rows.Scan(&e.MemberID, &e.Position); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

// GetPosition возвращает позицию участника в очереди
func (r *Repository) GetPosition(ctx context.Context, memberID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("position").
		From("priority_queue").
		Where(squirrel.Eq{"member_id": memberID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetPosition - build select query: %v", ErrBuildQuery, err)
	}

	var position int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&position)
	if err == sql.ErrNoRows {
		return 0, ErrMemberNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetPosition - scan position: %v", ErrScanRow, err)
	}

	return position, nil
}

// GetHolder возвращает участника, занимающего позицию
func (r *Repository) GetHolder(ctx context.Context, position int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("member_id").
		From("priority_queue").
		Where(squirrel.Eq{"position": position}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: GetHolder - build select query: %v", ErrBuildQuery, err)
	}

	var memberID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&memberID)
	if err == sql.ErrNoRows {
		return 0, ErrPositionNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetHolder - scan member_id: %v", ErrScanRow, err)
	}

	return memberID, nil
}

// ReplaceAll записывает новые позиции всех участников
// Вызывается только внутри транзакции после List с FOR UPDATE
func (r *Repository) ReplaceAll(ctx context.Context, entries []domain.PriorityEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, e := range entries {
		query, args, err := psqlbuilder.Update("priority_queue").
			Set("position", e.Position).
			Where(squirrel.Eq{"member_id": e.MemberID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - execute update: %v", ErrExecQuery, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: ReplaceAll - get rows affected: %v", ErrExecQuery, err)
		}
		if rowsAffected == 0 {
			return fmt.Errorf("%w: ReplaceAll - member %d", ErrMemberNotFound, e.MemberID)
		}
	}

	return nil
}
