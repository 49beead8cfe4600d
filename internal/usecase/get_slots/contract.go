package get_slots

import (
	"context"
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	// GetPickupFacts получает факты занятости слотов за период дат
	GetPickupFacts(ctx context.Context, from, to time.Time) ([]domain.PickupFact, error)
}

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SlotSettings, error)
}

// CalendarCache кеш размеченного календаря (опционален, может быть nil)
type CalendarCache interface {
	GetCalendar(ctx context.Context, key string) ([]domain.DaySlots, bool, error)
	SetCalendar(ctx context.Context, key string, calendar []domain.DaySlots) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
