package domain

import (
	"time"

	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// TimeSlot represents one pickup time offering on a given date,
// annotated with advisory capacity information.
type TimeSlot struct {
	Time      types.TimeString
	Used      int // количество заказов, уже занимающих слот
	Remaining int // свободная ёмкость, не бывает отрицательной
	Disabled  bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *TimeSlot) IsFull() bool {
	return s.Remaining <= 0
}

// DaySlots represents one calendar day of pickup slots.
// Times are strictly ascending with no duplicates.
type DaySlots struct {
	Date  time.Time
	Times []TimeSlot
}

// HasTime reports whether the day offers a slot starting at the given time
func (d *DaySlots) HasTime(t types.TimeString) bool {
	return d.SlotAt(t) != nil
}

// SlotAt returns the slot with the given start time, or nil
func (d *DaySlots) SlotAt(t types.TimeString) *TimeSlot {
	for i := range d.Times {
		if d.Times[i].Time == t {
			return &d.Times[i]
		}
	}
	return nil
}
