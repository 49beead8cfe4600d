package cancel_order

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
)

// CancelOrderRequest HTTP request model
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID                 int64   `json:"id"`
	Reference          string  `json:"reference"`
	Status             string  `json:"status"`
	PickupDate         string  `json:"pickupDate"`
	PickupTime         string  `json:"pickupTime"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
	UpdatedAt          string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(o *models.OrderResponse) *OrderResponse {
	resp := &OrderResponse{
		ID:                 o.ID,
		Reference:          o.Reference,
		Status:             o.Status,
		PickupDate:         o.PickupDate.Format(domain.DateFormat),
		PickupTime:         o.PickupTime,
		CancellationReason: o.CancellationReason,
		UpdatedAt:          o.UpdatedAt.Format(time.RFC3339),
	}

	if o.CancelledAt != nil {
		cancelledAt := o.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
