package domain

import (
	"time"

	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// OrderStatus represents the status of a pickup order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusUnpaid    OrderStatus = "unpaid"
	StatusPaid      OrderStatus = "paid"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRejected  OrderStatus = "rejected"
)

// Order represents a click-and-collect order in the system
type Order struct {
	ID        int64
	Reference string // публичный номер заказа для клиента
	UserID    int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail *string

	Items      []OrderItem
	TotalPrice float64
	Notes      *string

	PickupDate time.Time
	PickupTime types.TimeString
	Status     OrderStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem одна позиция заказа (денормализованная копия данных товара)
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// CountsTowardCapacity reports whether the order occupies a pickup slot.
// Cancelled and rejected orders free their slot.
func (o *Order) CountsTowardCapacity() bool {
	return o.Status != StatusCancelled && o.Status != StatusRejected
}

// CanBeCancelled returns true if the order can still be cancelled by the customer
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusUnpaid || o.Status == StatusPaid
}

// IsTerminal returns true if the order reached a final state
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCompleted || o.Status == StatusCancelled || o.Status == StatusRejected
}

// Fact returns the capacity-accounting projection of the order
func (o *Order) Fact() PickupFact {
	return PickupFact{
		PickupDate: o.PickupDate,
		PickupTime: o.PickupTime,
		Status:     o.Status,
	}
}

// PickupFact is the read-only projection of an order used for capacity
// accounting: when and whether it occupies a slot.
type PickupFact struct {
	PickupDate time.Time
	PickupTime types.TimeString
	Status     OrderStatus
}

// CountsTowardCapacity reports whether the fact occupies a pickup slot
func (f PickupFact) CountsTowardCapacity() bool {
	return f.Status != StatusCancelled && f.Status != StatusRejected
}

// OrdersFilter фильтр для выборки заказов
type OrdersFilter struct {
	UserID          *int64       // Фильтр по пользователю (опционально)
	StartDate       *time.Time   // Начало периода по дате самовывоза (опционально)
	EndDate         *time.Time   // Конец периода по дате самовывоза (опционально)
	Status          *OrderStatus // Фильтр по статусу (опционально)
	IncludeInactive bool         // Включать ли отменённые и отклонённые заказы
}

// allowedTransitions допустимые переходы статусов заказа
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {StatusUnpaid, StatusPaid, StatusReady, StatusCancelled, StatusRejected},
	StatusUnpaid:  {StatusPaid, StatusReady, StatusCancelled, StatusRejected},
	StatusPaid:    {StatusReady, StatusCompleted, StatusCancelled},
	StatusReady:   {StatusCompleted},
}

// CanTransitionTo reports whether the order status may change to target
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether the status belongs to the closed status set
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusUnpaid, StatusPaid, StatusReady,
		StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}
