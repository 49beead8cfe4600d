package create_order

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// Request модель запроса на создание заказа
type Request struct {
	UserID        int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail *string
	Items         []ItemRequest
	Notes         *string
	PickupDate    time.Time
	PickupTime    types.TimeString
}

// ItemRequest одна позиция заказа
type ItemRequest struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// Response модель ответа с созданным заказом
type Response struct {
	Order *domain.Order
}

// toDomainItems конвертирует позиции запроса в доменные позиции заказа
func toDomainItems(items []ItemRequest) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, item := range items {
		out[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return out
}

// totalPrice суммирует стоимость позиций
func totalPrice(items []ItemRequest) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
