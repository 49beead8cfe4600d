package get_availability

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// Request модель запроса доступности слотов на одну дату
type Request struct {
	Date time.Time // Дата, для которой запрашивается доступность
}

// Response модель ответа с доступностью слотов одной даты
type Response struct {
	Date       time.Time
	MaxPerSlot int
	Slots      []domain.TimeSlot
}
