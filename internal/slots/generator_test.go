package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

func mustConfig(t *testing.T, daysAhead int, open, close string, granularity int, cutoff string, maxPerSlot int, excluded ...time.Weekday) domain.SlotConfig {
	t.Helper()
	var cutoffTS types.TimeString
	if cutoff != "" {
		cutoffTS = types.MustTimeString(cutoff)
	}
	cfg, err := domain.NewSlotConfig(
		daysAhead,
		types.MustTimeString(open),
		types.MustTimeString(close),
		granularity,
		cutoffTS,
		maxPerSlot,
		excluded,
	)
	require.NoError(t, err)
	return cfg
}

func slotTimes(day domain.DaySlots) []string {
	out := make([]string, len(day.Times))
	for i, s := range day.Times {
		out[i] = s.Time.String()
	}
	return out
}

func TestGenerate_FridayAfternoonAfterCutoff(t *testing.T) {
	// Пятница 13:00 при отсечке 12:00: сегодня пропускается целиком,
	// воскресенье исключено, остаются суббота и понедельник.
	now := time.Date(2025, 6, 6, 13, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 3, "09:00", "10:00", 30, "12:00", 5, time.Sunday)

	calendar := Generate(now, cfg)

	require.Len(t, calendar, 1+1)
	assert.Equal(t, "2025-06-07", calendar[0].Date.Format(domain.DateFormat))
	assert.Equal(t, []string{"09:00", "09:30"}, slotTimes(calendar[0]))
	assert.Equal(t, "2025-06-09", calendar[1].Date.Format(domain.DateFormat))
}

func TestGenerate_BeforeCutoffIncludesToday(t *testing.T) {
	now := time.Date(2025, 6, 6, 11, 59, 0, 0, time.UTC)
	cfg := mustConfig(t, 2, "09:00", "10:00", 30, "12:00", 5)

	calendar := Generate(now, cfg)

	require.Len(t, calendar, 2)
	assert.Equal(t, "2025-06-06", calendar[0].Date.Format(domain.DateFormat))
}

func TestGenerate_ExactlyAtCutoffSkipsToday(t *testing.T) {
	now := time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 2, "09:00", "10:00", 30, "12:00", 5)

	calendar := Generate(now, cfg)

	require.NotEmpty(t, calendar)
	assert.NotEqual(t, "2025-06-06", calendar[0].Date.Format(domain.DateFormat))
}

func TestGenerate_CutoffIgnoresSeconds(t *testing.T) {
	// 12:00:45 уже считается достижением отсечки 12:00
	now := time.Date(2025, 6, 6, 12, 0, 45, 0, time.UTC)
	cfg := mustConfig(t, 2, "09:00", "10:00", 30, "12:00", 5)

	calendar := Generate(now, cfg)

	require.NotEmpty(t, calendar)
	assert.NotEqual(t, "2025-06-06", calendar[0].Date.Format(domain.DateFormat))
}

func TestPastCutoff(t *testing.T) {
	cfg := mustConfig(t, 2, "09:00", "10:00", 30, "12:00", 5)
	noCutoff := mustConfig(t, 2, "09:00", "10:00", 30, "", 5)

	assert.False(t, PastCutoff(time.Date(2025, 6, 6, 11, 59, 0, 0, time.UTC), cfg))
	assert.True(t, PastCutoff(time.Date(2025, 6, 6, 12, 0, 0, 0, time.UTC), cfg))
	assert.True(t, PastCutoff(time.Date(2025, 6, 6, 12, 0, 30, 0, time.UTC), cfg))
	assert.False(t, PastCutoff(time.Date(2025, 6, 6, 23, 0, 0, 0, time.UTC), noCutoff))
}

func TestGenerate_NoCutoffConfigured(t *testing.T) {
	now := time.Date(2025, 6, 6, 23, 30, 0, 0, time.UTC)
	cfg := mustConfig(t, 1, "09:00", "10:00", 30, "", 5)

	calendar := Generate(now, cfg)

	require.Len(t, calendar, 1)
	assert.Equal(t, "2025-06-06", calendar[0].Date.Format(domain.DateFormat))
}

func TestGenerate_ExcludedWeekdaysNeverAppear(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) // понедельник
	cfg := mustConfig(t, 21, "09:00", "18:00", 30, "", 5, time.Sunday, time.Monday)

	calendar := Generate(now, cfg)

	assert.Len(t, calendar, 15) // 21 день минус 3 воскресенья и 3 понедельника
	for _, day := range calendar {
		assert.NotEqual(t, time.Sunday, day.Date.Weekday())
		assert.NotEqual(t, time.Monday, day.Date.Weekday())
	}
}

func TestGenerate_CloseBoundaryExclusive(t *testing.T) {
	now := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 1, "09:00", "17:30", 30, "", 5)

	calendar := Generate(now, cfg)

	require.Len(t, calendar, 1)
	times := slotTimes(calendar[0])
	assert.Equal(t, "09:00", times[0])
	assert.Equal(t, "17:00", times[len(times)-1]) // слот 17:30 не создаётся
}

func TestGenerate_PartialSlotDropped(t *testing.T) {
	// Окно 70 минут при шаге 30: слот 10:00-10:30 не помещается до 10:10
	now := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 1, "09:00", "10:10", 30, "", 5)

	calendar := Generate(now, cfg)

	require.Len(t, calendar, 1)
	assert.Equal(t, []string{"09:00", "09:30"}, slotTimes(calendar[0]))
}

func TestGenerate_ZeroDaysAhead(t *testing.T) {
	now := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 1, "09:00", "10:00", 30, "", 5)
	cfg.DaysAhead = 0

	assert.Empty(t, Generate(now, cfg))

	cfg.DaysAhead = -3
	assert.Empty(t, Generate(now, cfg))
}

func TestGenerate_OpenAfterCloseYieldsEmptyDays(t *testing.T) {
	// Конструктор такое не пропускает, но генератор обязан быть
	// толерантным к вырожденному окну.
	now := time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 1, "09:00", "10:00", 30, "", 5)
	cfg.OpenTime = types.MustTimeString("18:00")
	cfg.CloseTime = types.MustTimeString("09:00")

	calendar := Generate(now, cfg)

	require.Len(t, calendar, 1)
	assert.Empty(t, calendar[0].Times)
}

func TestGenerate_Deterministic(t *testing.T) {
	now := time.Date(2025, 6, 6, 13, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 7, "09:00", "18:00", 30, "12:00", 5, time.Sunday)

	assert.Equal(t, Generate(now, cfg), Generate(now, cfg))
}

func TestGenerateDay_IgnoresExclusionRules(t *testing.T) {
	// Одиночная дата генерируется без учёта дня недели и отсечки:
	// правила задаются конфигурацией вызывающего эндпоинта.
	sunday := time.Date(2025, 6, 8, 15, 0, 0, 0, time.UTC)
	cfg := mustConfig(t, 1, "09:00", "18:00", 30, "", 1, time.Sunday)

	day := GenerateDay(sunday, cfg)

	assert.Equal(t, "2025-06-08", day.Date.Format(domain.DateFormat))
	require.Len(t, day.Times, 18)
	assert.Equal(t, "09:00", day.Times[0].Time.String())
	assert.Equal(t, "17:30", day.Times[len(day.Times)-1].Time.String())
}

func TestNewSlotConfig_Validation(t *testing.T) {
	open := types.MustTimeString("09:00")
	close := types.MustTimeString("18:00")

	_, err := domain.NewSlotConfig(14, open, close, 0, "", 5, nil)
	assert.Error(t, err, "нулевой шаг")

	_, err = domain.NewSlotConfig(14, close, open, 30, "", 5, nil)
	assert.Error(t, err, "открытие позже закрытия")

	_, err = domain.NewSlotConfig(14, open, open, 30, "", 5, nil)
	assert.Error(t, err, "открытие равно закрытию")

	_, err = domain.NewSlotConfig(14, open, close, 30, "", -1, nil)
	assert.Error(t, err, "отрицательная ёмкость")

	cfg, err := domain.NewSlotConfig(14, open, close, 30, "", 0, []time.Weekday{time.Sunday})
	require.NoError(t, err, "нулевая ёмкость допустима")
	assert.True(t, cfg.IsExcluded(time.Sunday))
	assert.False(t, cfg.IsExcluded(time.Monday))
}
