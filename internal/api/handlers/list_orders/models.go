package list_orders

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
)

// OrderListResponse HTTP response model
type OrderListResponse struct {
	Orders []OrderItemResponse `json:"orders"`
	Total  int                 `json:"total"`
}

// OrderItemResponse элемент списка заказов
type OrderItemResponse struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	UserID        int64   `json:"userId"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	TotalPrice    float64 `json:"totalPrice"`
	PickupDate    string  `json:"pickupDate"`
	PickupTime    string  `json:"pickupTime"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}

// ParseQuery читает фильтры списка заказов из query-параметров
func ParseQuery(query url.Values) (*models.GetOrdersRequest, error) {
	req := &models.GetOrdersRequest{}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'from' date %q: %w", raw, err)
		}
		req.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'to' date %q: %w", raw, err)
		}
		req.EndDate = &to
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("'to' date is before 'from' date")
	}

	if raw := query.Get("status"); raw != "" {
		status := raw
		req.Status = &status
	}

	if raw := query.Get("userId"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid 'userId' %q: %w", raw, err)
		}
		req.UserID = &userID
	}

	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid 'includeInactive' %q: %w", raw, err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OrderListResponse) *OrderListResponse {
	out := &OrderListResponse{
		Orders: make([]OrderItemResponse, len(resp.Orders)),
		Total:  resp.Total,
	}

	for i, o := range resp.Orders {
		out.Orders[i] = OrderItemResponse{
			ID:            o.ID,
			Reference:     o.Reference,
			UserID:        o.UserID,
			CustomerName:  o.CustomerName,
			CustomerPhone: o.CustomerPhone,
			TotalPrice:    o.TotalPrice,
			PickupDate:    o.PickupDate.Format(domain.DateFormat),
			PickupTime:    o.PickupTime,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		}
	}

	return out
}
