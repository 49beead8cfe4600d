package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

func fact(date, timeOfDay string, status domain.OrderStatus) domain.PickupFact {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		panic(err)
	}
	order := domain.Order{
		PickupDate: d,
		PickupTime: types.TimeString(timeOfDay),
		Status:     status,
	}
	return order.Fact()
}

func calendarForDate(t *testing.T, date string) []domain.DaySlots {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, date)
	require.NoError(t, err)
	cfg := mustConfig(t, 1, "09:00", "12:00", 30, "", 5)
	return []domain.DaySlots{GenerateDay(d, cfg)}
}

func TestResolve_CountsPerSlot(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")

	facts := []domain.PickupFact{
		fact("2025-06-01", "10:00", domain.StatusPaid),
		fact("2025-06-01", "10:00", domain.StatusPending),
	}

	resolved := Resolve(calendar, facts, 2)

	require.Len(t, resolved, 1)
	full := resolved[0].SlotAt("10:00")
	require.NotNil(t, full)
	assert.Equal(t, 2, full.Used)
	assert.Equal(t, 0, full.Remaining)
	assert.True(t, full.Disabled)

	// Остальные слоты дня остаются пустыми
	for _, slot := range resolved[0].Times {
		if slot.Time == "10:00" {
			continue
		}
		assert.Equal(t, 0, slot.Used, "slot %s", slot.Time)
		assert.Equal(t, 2, slot.Remaining, "slot %s", slot.Time)
		assert.False(t, slot.Disabled, "slot %s", slot.Time)
	}
}

func TestResolve_CancelledAndRejectedDoNotCount(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")

	facts := []domain.PickupFact{
		fact("2025-06-01", "09:30", domain.StatusCancelled),
		fact("2025-06-01", "09:30", domain.StatusRejected),
		fact("2025-06-01", "09:30", domain.StatusUnpaid),
	}

	resolved := Resolve(calendar, facts, 1)

	slot := resolved[0].SlotAt("09:30")
	require.NotNil(t, slot)
	assert.Equal(t, 1, slot.Used, "считается только неоплаченный заказ")
	assert.Equal(t, 0, slot.Remaining)
	assert.True(t, slot.Disabled)
}

func TestResolve_RemainingNeverNegative(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")

	// Переполнение: три заказа при ёмкости 2
	facts := []domain.PickupFact{
		fact("2025-06-01", "11:00", domain.StatusPaid),
		fact("2025-06-01", "11:00", domain.StatusPaid),
		fact("2025-06-01", "11:00", domain.StatusReady),
	}

	resolved := Resolve(calendar, facts, 2)

	slot := resolved[0].SlotAt("11:00")
	require.NotNil(t, slot)
	assert.Equal(t, 3, slot.Used)
	assert.Equal(t, 0, slot.Remaining)
	assert.True(t, slot.Disabled)
}

func TestResolve_NormalizesSecondsInFacts(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")

	facts := []domain.PickupFact{
		fact("2025-06-01", "10:30:00", domain.StatusPaid),
	}

	resolved := Resolve(calendar, facts, 5)

	slot := resolved[0].SlotAt("10:30")
	require.NotNil(t, slot)
	assert.Equal(t, 1, slot.Used)
	assert.Equal(t, 4, slot.Remaining)
}

func TestResolve_SupersetOfFactsIsHarmless(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")

	// Факты чужих дат и несуществующих времён не влияют на календарь
	facts := []domain.PickupFact{
		fact("2025-07-15", "10:00", domain.StatusPaid),
		fact("2025-06-01", "23:45", domain.StatusPaid),
	}

	resolved := Resolve(calendar, facts, 3)

	for _, slot := range resolved[0].Times {
		assert.Equal(t, 0, slot.Used)
		assert.Equal(t, 3, slot.Remaining)
	}
}

func TestResolve_ZeroCapacityDisablesEverything(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")

	resolved := Resolve(calendar, nil, 0)

	for _, slot := range resolved[0].Times {
		assert.Equal(t, 0, slot.Remaining)
		assert.True(t, slot.Disabled)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	calendar := calendarForDate(t, "2025-06-01")
	facts := []domain.PickupFact{
		fact("2025-06-01", "09:00", domain.StatusPaid),
		fact("2025-06-01", "10:00", domain.StatusCancelled),
	}

	first := Resolve(calendar, facts, 2)
	second := Resolve(calendar, facts, 2)

	assert.Equal(t, first, second)

	// Входной календарь не модифицируется
	assert.Equal(t, 0, calendar[0].Times[0].Used)
}

func TestResolve_PreservesStructureAndOrder(t *testing.T) {
	d1, _ := time.Parse(domain.DateFormat, "2025-06-01")
	d2, _ := time.Parse(domain.DateFormat, "2025-06-02")
	cfg := mustConfig(t, 1, "09:00", "10:30", 30, "", 5)
	calendar := []domain.DaySlots{GenerateDay(d1, cfg), GenerateDay(d2, cfg)}

	resolved := Resolve(calendar, nil, 5)

	require.Len(t, resolved, 2)
	assert.Equal(t, d1, resolved[0].Date)
	assert.Equal(t, d2, resolved[1].Date)
	for i, day := range resolved {
		require.Len(t, day.Times, len(calendar[i].Times))
		for j, slot := range day.Times {
			assert.Equal(t, calendar[i].Times[j].Time, slot.Time)
		}
	}
}
