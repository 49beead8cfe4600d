package create_order

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	createOrder "github.com/m04kA/BKR-PickupService/internal/usecase/create_order"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	CustomerEmail *string       `json:"customerEmail,omitempty"`
	Items         []ItemRequest `json:"items"`
	Notes         *string       `json:"notes,omitempty"`
	PickupDate    string        `json:"pickupDate"`
	PickupTime    string        `json:"pickupTime"`
}

// ItemRequest одна позиция заказа
type ItemRequest struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID         int64   `json:"id"`
	Reference  string  `json:"reference"`
	Status     string  `json:"status"`
	PickupDate string  `json:"pickupDate"`
	PickupTime string  `json:"pickupTime"`
	TotalPrice float64 `json:"totalPrice"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateOrderRequest) ToUseCaseRequest(userID int64) (*createOrder.Request, error) {
	pickupDate, err := time.Parse(domain.DateFormat, r.PickupDate)
	if err != nil {
		return nil, err
	}

	pickupTime, err := types.NewTimeStringFromString(r.PickupTime)
	if err != nil {
		return nil, err
	}

	items := make([]createOrder.ItemRequest, len(r.Items))
	for i, item := range r.Items {
		items[i] = createOrder.ItemRequest{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}

	return &createOrder.Request{
		UserID:        userID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		CustomerEmail: r.CustomerEmail,
		Items:         items,
		Notes:         r.Notes,
		PickupDate:    pickupDate,
		PickupTime:    pickupTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *OrderResponse {
	o := resp.Order
	return &OrderResponse{
		ID:         o.ID,
		Reference:  o.Reference,
		Status:     string(o.Status),
		PickupDate: o.PickupDate.Format(domain.DateFormat),
		PickupTime: o.PickupTime.String(),
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
}
