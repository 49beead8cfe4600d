package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/dbmetrics"
	"github.com/m04kA/BKR-PickupService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с заказами самовывоза
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var orderColumns = []string{
	"id",
	"reference",
	"user_id",
	"customer_name",
	"customer_phone",
	"customer_email",
	"items",
	"total_price",
	"notes",
	"pickup_date",
	"pickup_time",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create создает новый заказ
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal items: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("orders").
		Columns(
			"reference",
			"user_id",
			"customer_name",
			"customer_phone",
			"customer_email",
			"items",
			"total_price",
			"notes",
			"pickup_date",
			"pickup_time",
			"status",
		).
		Values(
			o.Reference,
			o.UserID,
			o.CustomerName,
			o.CustomerPhone,
			o.CustomerEmail,
			itemsJSON,
			o.TotalPrice,
			o.Notes,
			o.PickupDate,
			o.PickupTime,
			o.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return o, nil
}

// GetByID получает заказ по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	o, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return o, nil
}

// ListWithFilter получает заказы с гибкой фильтрацией по пользователю,
// периоду дат самовывоза и статусу
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From("orders").
		OrderBy("pickup_date ASC", "pickup_time ASC", "id ASC")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"pickup_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"pickup_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.NonCountingStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWithFilter - scan order: %v", ErrScanRow, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - iterate rows: %v", ErrExecQuery, err)
	}

	return orders, nil
}

// GetPickupFacts получает факты занятости слотов за период дат.
// Выбираются только колонки, участвующие в учёте ёмкости; фильтрация
// по статусу на стороне БД - оптимизация объёма чтения, финальное
// исключение статусов всё равно выполняет resolver.
func (r *Repository) GetPickupFacts(ctx context.Context, from, to time.Time) ([]domain.PickupFact, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"pickup_date",
		"pickup_time",
		"status",
	).
		From("orders").
		Where(squirrel.GtOrEq{"pickup_date": from}).
		Where(squirrel.LtOrEq{"pickup_date": to}).
		Where(squirrel.NotEq{"status": domain.NonCountingStatuses}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPickupFacts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetPickupFacts - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	facts := make([]domain.PickupFact, 0)
	for rows.Next() {
		var fact domain.PickupFact
		if err := rows.Scan(&fact.PickupDate, &fact.PickupTime, &fact.Status); err != nil {
			return nil, fmt.Errorf("%w: GetPickupFacts - scan fact: %v", ErrScanRow, err)
		}
		facts = append(facts, fact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetPickupFacts - iterate rows: %v", ErrExecQuery, err)
	}

	return facts, nil
}

// UpdateStatus обновляет статус заказа
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if !status.IsValid() {
		return fmt.Errorf("%w: UpdateStatus - status %q", ErrInvalidStatus, status)
	}

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Cancel отменяет заказ с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.OrderStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if status != domain.StatusCancelled && status != domain.StatusRejected {
		return fmt.Errorf("%w: Cancel - status %q", ErrInvalidStatus, status)
	}

	query, args, err := psqlbuilder.Update("orders").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var itemsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&o.ID,
		&o.Reference,
		&o.UserID,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.CustomerEmail,
		&itemsJSON,
		&o.TotalPrice,
		&o.Notes,
		&o.PickupDate,
		&o.PickupTime,
		&o.Status,
		&o.CancellationReason,
		&o.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
	}

	o.CreatedAt = createdAt.Time
	o.UpdatedAt = updatedAt.Time

	return &o, nil
}
