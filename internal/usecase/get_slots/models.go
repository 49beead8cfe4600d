package get_slots

import (
	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// Response модель ответа с календарём слотов самовывоза
type Response struct {
	Days       []domain.DaySlots // Размеченный календарь в порядке дат
	MaxPerSlot int               // Действующая ёмкость одного слота
}
