package cancel_order

import (
	"context"

	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
)

type OrdersService interface {
	Cancel(ctx context.Context, id int64, userID int64, reason string) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
