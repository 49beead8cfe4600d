// Package slots реализует генерацию календаря слотов самовывоза и
// расчёт их занятости. Обе операции - чистые функции без I/O; данные о
// заказах им передаёт вызывающий слой.
package slots

import (
	"fmt"
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// Generate строит календарь слотов на cfg.DaysAhead дней вперёд от now.
//
// Правила:
//   - если время now уже достигло SameDayCutoff, сегодняшний день не
//     предлагается вовсе, окно из DaysAhead дней начинается с завтра;
//   - дни с исключённым днём недели пропускаются целиком, без сдвига
//     окна (в результате может быть меньше DaysAhead элементов);
//   - слоты идут с шагом GranularityMinutes от OpenTime; слот, конец
//     которого вышел бы за CloseTime, не создаётся (неполные слоты
//     отбрасываются); слот, начинающийся ровно в CloseTime, невозможен.
//
// Функция детерминирована для одного и того же now и никогда не
// завершается ошибкой: некорректная конфигурация отсекается
// конструктором domain.NewSlotConfig.
func Generate(now time.Time, cfg domain.SlotConfig) []domain.DaySlots {
	calendar := make([]domain.DaySlots, 0, max(cfg.DaysAhead, 0))
	if cfg.DaysAhead <= 0 {
		return calendar
	}

	start := dateOnly(now)
	if PastCutoff(now, cfg) {
		start = start.AddDate(0, 0, 1)
	}

	for d := 0; d < cfg.DaysAhead; d++ {
		date := start.AddDate(0, 0, d)

		if cfg.IsExcluded(date.Weekday()) {
			continue
		}

		calendar = append(calendar, domain.DaySlots{
			Date:  date,
			Times: dayTimes(cfg),
		})
	}

	return calendar
}

// GenerateDay строит слоты для одной произвольной даты, игнорируя
// DaysAhead. Исключение дней недели и отсечка к нему не применяются:
// правила дня задаются переданной конфигурацией, вызывающий слой сам
// решает, какие из них действуют.
func GenerateDay(date time.Time, cfg domain.SlotConfig) domain.DaySlots {
	return domain.DaySlots{
		Date:  dateOnly(date),
		Times: dayTimes(cfg),
	}
}

// dayTimes генерирует слоты одного дня: от OpenTime с шагом
// GranularityMinutes, пока конец слота не выходит за CloseTime.
// Арифметика ведётся в минутах от полуночи, поэтому OpenTime >= CloseTime
// даёт пустой список, а не ошибку.
func dayTimes(cfg domain.SlotConfig) []domain.TimeSlot {
	openMin, err := cfg.OpenTime.Minutes()
	if err != nil {
		return []domain.TimeSlot{}
	}
	closeMin, err := cfg.CloseTime.Minutes()
	if err != nil {
		return []domain.TimeSlot{}
	}

	times := make([]domain.TimeSlot, 0, (closeMin-openMin)/cfg.GranularityMinutes)
	for m := openMin; m+cfg.GranularityMinutes <= closeMin; m += cfg.GranularityMinutes {
		times = append(times, domain.TimeSlot{Time: minutesToTime(m)})
	}

	return times
}

// PastCutoff проверяет, достигло ли время now отсечки same-day заказов.
// От результата зависит первый день календаря, поэтому проверка нужна
// и вызывающему слою: ключ кеша календаря обязан её учитывать.
func PastCutoff(now time.Time, cfg domain.SlotConfig) bool {
	if !cfg.HasCutoff() {
		return false
	}
	// секунды отбрасываются: 12:00:30 при отсечке 12:00 - уже поздно
	return !types.NewTimeString(now).IsBefore(cfg.SameDayCutoff)
}

func minutesToTime(m int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
