package domain

import (
	"time"

	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// SlotSettings хранимые настройки расписания самовывоза.
// Единственная строка на магазин; при отсутствии строки сервис
// использует дефолты из config.toml.
type SlotSettings struct {
	ID                 int64
	DaysAhead          int
	OpenTime           types.TimeString
	CloseTime          types.TimeString
	GranularityMinutes int
	SameDayCutoff      types.TimeString
	MaxPerSlot         int
	ExcludedWeekdays   []time.Weekday
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ToSlotConfig builds the validated calendar configuration from stored settings
func (s *SlotSettings) ToSlotConfig() (SlotConfig, error) {
	return NewSlotConfig(
		s.DaysAhead,
		s.OpenTime,
		s.CloseTime,
		s.GranularityMinutes,
		s.SameDayCutoff,
		s.MaxPerSlot,
		s.ExcludedWeekdays,
	)
}
