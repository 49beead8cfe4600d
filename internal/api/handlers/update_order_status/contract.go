package update_order_status

import (
	"context"

	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
)

type OrdersService interface {
	UpdateStatus(ctx context.Context, id int64, status string, reason string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
