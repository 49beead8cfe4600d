package slotsettings

import (
	"context"

	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SlotSettings, error)
	Upsert(ctx context.Context, settings *domain.SlotSettings) (*domain.SlotSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
