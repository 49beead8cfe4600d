package get_order

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
)

// OrderResponse HTTP response model
type OrderResponse struct {
	ID                 int64              `json:"id"`
	Reference          string             `json:"reference"`
	CustomerName       string             `json:"customerName"`
	CustomerPhone      string             `json:"customerPhone"`
	CustomerEmail      *string            `json:"customerEmail,omitempty"`
	Items              []domain.OrderItem `json:"items"`
	TotalPrice         float64            `json:"totalPrice"`
	Notes              *string            `json:"notes,omitempty"`
	PickupDate         string             `json:"pickupDate"`
	PickupTime         string             `json:"pickupTime"`
	Status             string             `json:"status"`
	CancellationReason *string            `json:"cancellationReason,omitempty"`
	CancelledAt        *string            `json:"cancelledAt,omitempty"`
	CreatedAt          string             `json:"createdAt"`
	UpdatedAt          string             `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(o *models.OrderResponse) *OrderResponse {
	resp := &OrderResponse{
		ID:                 o.ID,
		Reference:          o.Reference,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		CustomerEmail:      o.CustomerEmail,
		Items:              o.Items,
		TotalPrice:         o.TotalPrice,
		Notes:              o.Notes,
		PickupDate:         o.PickupDate.Format(domain.DateFormat),
		PickupTime:         o.PickupTime,
		Status:             o.Status,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          o.UpdatedAt.Format(time.RFC3339),
	}

	if o.CancelledAt != nil {
		cancelledAt := o.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}
