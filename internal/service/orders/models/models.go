package models

import (
	"fmt"
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// OrderResponse модель заказа для отдачи наружу
type OrderResponse struct {
	ID                 int64
	Reference          string
	UserID             int64
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      *string
	Items              []domain.OrderItem
	TotalPrice         float64
	Notes              *string
	PickupDate         time.Time
	PickupTime         string
	Status             string
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// OrderListResponse список заказов
type OrderListResponse struct {
	Orders []OrderResponse
	Total  int
}

// GetOrdersRequest запрос списка заказов с фильтрацией
type GetOrdersRequest struct {
	UserID          *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetOrdersRequest) ToDomainFilter() (domain.OrdersFilter, error) {
	filter := domain.OrdersFilter{
		UserID:          r.UserID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainOrderStatus(*r.Status)
		if err != nil {
			return domain.OrdersFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainOrderStatus конвертирует строку в доменный статус заказа
func ToDomainOrderStatus(s string) (domain.OrderStatus, error) {
	status := domain.OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown order status %q", s)
	}
	return status, nil
}

// FromDomainOrder конвертирует доменный заказ в модель ответа
func FromDomainOrder(o *domain.Order) *OrderResponse {
	return &OrderResponse{
		ID:                 o.ID,
		Reference:          o.Reference,
		UserID:             o.UserID,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		CustomerEmail:      o.CustomerEmail,
		Items:              o.Items,
		TotalPrice:         o.TotalPrice,
		Notes:              o.Notes,
		PickupDate:         o.PickupDate,
		PickupTime:         o.PickupTime.String(),
		Status:             string(o.Status),
		CancellationReason: o.CancellationReason,
		CancelledAt:        o.CancelledAt,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список доменных заказов
func FromDomainOrderList(orders []*domain.Order) *OrderListResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = *FromDomainOrder(o)
	}
	return &OrderListResponse{Orders: out, Total: len(out)}
}
