package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// SlotConfig immutable configuration of the slot calendar.
// Built via NewSlotConfig; a validated config makes slot generation
// infallible: malformed values are a caller-side programming error
// caught at construction, never at generation time.
type SlotConfig struct {
	DaysAhead          int
	OpenTime           types.TimeString
	CloseTime          types.TimeString
	GranularityMinutes int
	SameDayCutoff      types.TimeString // нулевое значение = без отсечки
	MaxPerSlot         int
	ExcludedWeekdays   map[time.Weekday]bool
}

// NewSlotConfig validates and builds a SlotConfig
func NewSlotConfig(
	daysAhead int,
	openTime, closeTime types.TimeString,
	granularityMinutes int,
	sameDayCutoff types.TimeString,
	maxPerSlot int,
	excludedWeekdays []time.Weekday,
) (SlotConfig, error) {
	if granularityMinutes <= 0 {
		return SlotConfig{}, fmt.Errorf("slot config: granularity must be positive, got %d", granularityMinutes)
	}
	if openTime.IsZero() || closeTime.IsZero() {
		return SlotConfig{}, fmt.Errorf("slot config: open and close times are required")
	}
	if !openTime.IsBefore(closeTime) {
		return SlotConfig{}, fmt.Errorf("slot config: open time %s must be before close time %s", openTime, closeTime)
	}
	if maxPerSlot < 0 {
		return SlotConfig{}, fmt.Errorf("slot config: max per slot must not be negative, got %d", maxPerSlot)
	}

	excluded := make(map[time.Weekday]bool, len(excludedWeekdays))
	for _, wd := range excludedWeekdays {
		excluded[wd] = true
	}

	return SlotConfig{
		DaysAhead:          daysAhead,
		OpenTime:           openTime,
		CloseTime:          closeTime,
		GranularityMinutes: granularityMinutes,
		SameDayCutoff:      sameDayCutoff,
		MaxPerSlot:         maxPerSlot,
		ExcludedWeekdays:   excluded,
	}, nil
}

// IsExcluded reports whether the weekday is excluded from the calendar
func (c SlotConfig) IsExcluded(wd time.Weekday) bool {
	return c.ExcludedWeekdays[wd]
}

// HasCutoff reports whether same-day ordering has a cutoff time
func (c SlotConfig) HasCutoff() bool {
	return !c.SameDayCutoff.IsZero()
}

// ParseWeekday converts an English weekday name ("Sunday") to time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if wd.String() == name {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("slot config: unknown weekday %q", name)
}
