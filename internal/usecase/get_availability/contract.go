package get_availability

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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
