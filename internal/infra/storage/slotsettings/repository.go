package slotsettings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/dbmetrics"
	"github.com/m04kA/BKR-PickupService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий настроек расписания самовывоза.
// Таблица slot_settings содержит не больше одной строки - настройки
// магазина целиком.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает сохранённые настройки расписания
func (r *Repository) Get(ctx context.Context) (*domain.SlotSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"days_ahead",
		"open_time",
		"close_time",
		"granularity_minutes",
		"same_day_cutoff",
		"max_per_slot",
		"excluded_weekdays",
		"created_at",
		"updated_at",
	).
		From("slot_settings").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var settings domain.SlotSettings
	var weekdays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&settings.DaysAhead,
		&settings.OpenTime,
		&settings.CloseTime,
		&settings.GranularityMinutes,
		&settings.SameDayCutoff,
		&settings.MaxPerSlot,
		&weekdays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	settings.ExcludedWeekdays = make([]time.Weekday, 0, len(weekdays))
	for _, wd := range weekdays {
		settings.ExcludedWeekdays = append(settings.ExcludedWeekdays, time.Weekday(wd))
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// Upsert сохраняет настройки расписания, перезаписывая существующую строку
func (r *Repository) Upsert(ctx context.Context, settings *domain.SlotSettings) (*domain.SlotSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weekdays := make(pq.Int64Array, 0, len(settings.ExcludedWeekdays))
	for _, wd := range settings.ExcludedWeekdays {
		weekdays = append(weekdays, int64(wd))
	}

	query, args, err := psqlbuilder.Insert("slot_settings").
		Columns(
			"id",
			"days_ahead",
			"open_time",
			"close_time",
			"granularity_minutes",
			"same_day_cutoff",
			"max_per_slot",
			"excluded_weekdays",
		).
		Values(
			1, // единственная строка настроек
			settings.DaysAhead,
			settings.OpenTime,
			settings.CloseTime,
			settings.GranularityMinutes,
			settings.SameDayCutoff,
			settings.MaxPerSlot,
			weekdays,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			days_ahead = EXCLUDED.days_ahead,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			granularity_minutes = EXCLUDED.granularity_minutes,
			same_day_cutoff = EXCLUDED.same_day_cutoff,
			max_per_slot = EXCLUDED.max_per_slot,
			excluded_weekdays = EXCLUDED.excluded_weekdays,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return settings, nil
}
