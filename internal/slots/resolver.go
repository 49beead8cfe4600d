package slots

import (
	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

type slotKey struct {
	date string
	time types.TimeString
}

// Resolve размечает календарь занятостью по фактам заказов.
//
// Отменённые и отклонённые заказы слот не занимают. Лишние факты
// (другие даты, несуществующие времена) безвредны: они просто не
// находят свой слот. Remaining насыщается в нуле: переполненный слот
// показывается как полный, а не с отрицательным остатком.
//
// Календарь возвращается новым слайсом той же структуры и порядка;
// входные данные не модифицируются, повторный вызов с теми же
// аргументами даёт тот же результат.
func Resolve(calendar []domain.DaySlots, facts []domain.PickupFact, maxPerSlot int) []domain.DaySlots {
	counts := countFacts(facts)

	resolved := make([]domain.DaySlots, len(calendar))
	for i, day := range calendar {
		dateKey := day.Date.Format(domain.DateFormat)

		times := make([]domain.TimeSlot, len(day.Times))
		for j, slot := range day.Times {
			used := counts[slotKey{date: dateKey, time: slot.Time}]

			remaining := maxPerSlot - used
			if remaining < 0 {
				remaining = 0
			}

			resolvedSlot := domain.TimeSlot{
				Time:      slot.Time,
				Used:      used,
				Remaining: remaining,
			}
			resolvedSlot.Disabled = resolvedSlot.IsFull()
			times[j] = resolvedSlot
		}

		resolved[i] = domain.DaySlots{Date: day.Date, Times: times}
	}

	return resolved
}

// countFacts строит счётчик занимающих слот заказов по ключу (дата, время).
// Время нормализуется к HH:MM, внешнее хранилище может отдавать его с
// секундами, слотовая арифметика работает только с минутами.
func countFacts(facts []domain.PickupFact) map[slotKey]int {
	counts := make(map[slotKey]int, len(facts))

	for _, fact := range facts {
		if !fact.CountsTowardCapacity() {
			continue
		}

		pickupTime := fact.PickupTime
		if normalized, err := types.NewTimeStringFromString(pickupTime.String()); err == nil {
			pickupTime = normalized
		}

		key := slotKey{
			date: fact.PickupDate.Format(domain.DateFormat),
			time: pickupTime,
		}
		counts[key]++
	}

	return counts
}
