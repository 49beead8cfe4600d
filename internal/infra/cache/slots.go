package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// SlotsCache кеш размеченного календаря слотов в Redis.
//
// Данные о занятости слотов - advisory по своей природе (клиент в любом
// случае видит возможно устаревшие счётчики), поэтому короткий TTL не
// меняет семантику, только снимает нагрузку с БД на горячем эндпоинте.
type SlotsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New подключается к Redis и возвращает кеш календаря
func New(addr string, ttl time.Duration) (*SlotsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: ping redis at %s: %w", addr, err)
	}

	return &SlotsCache{client: client, ttl: ttl}, nil
}

type cachedDay struct {
	Date  string           `json:"date"`
	Times []cachedTimeSlot `json:"times"`
}

type cachedTimeSlot struct {
	Time      string `json:"time"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Disabled  bool   `json:"disabled"`
}

// CalendarKey строит ключ кеша: дата запроса, признак пройденной отсечки
// same-day заказов и версия настроек. Смена настроек меняет ключ, так что
// устаревший календарь не переживает обновление расписания; отсечка в
// ключе не даёт отдавать закешированный до неё календарь с сегодняшним
// днём после того, как отсечка пройдена.
func CalendarKey(date time.Time, pastCutoff bool, settingsVersion int64, maxPerSlot int) string {
	return fmt.Sprintf("slots:calendar:%s:%t:%d:%d",
		date.Format(domain.DateFormat), pastCutoff, settingsVersion, maxPerSlot)
}

// GetCalendar читает календарь из кеша. Второй результат false - промах.
func (c *SlotsCache) GetCalendar(ctx context.Context, key string) ([]domain.DaySlots, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	var days []cachedDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, false, fmt.Errorf("cache: unmarshal %s: %w", key, err)
	}

	calendar := make([]domain.DaySlots, 0, len(days))
	for _, d := range days {
		date, err := time.Parse(domain.DateFormat, d.Date)
		if err != nil {
			return nil, false, fmt.Errorf("cache: bad date %q in %s: %w", d.Date, key, err)
		}
		times := make([]domain.TimeSlot, 0, len(d.Times))
		for _, t := range d.Times {
			times = append(times, domain.TimeSlot{
				Time:      types.TimeString(t.Time),
				Used:      t.Used,
				Remaining: t.Remaining,
				Disabled:  t.Disabled,
			})
		}
		calendar = append(calendar, domain.DaySlots{Date: date, Times: times})
	}

	return calendar, true, nil
}

// SetCalendar сохраняет календарь в кеш с настроенным TTL
func (c *SlotsCache) SetCalendar(ctx context.Context, key string, calendar []domain.DaySlots) error {
	days := make([]cachedDay, 0, len(calendar))
	for _, d := range calendar {
		times := make([]cachedTimeSlot, 0, len(d.Times))
		for _, t := range d.Times {
			times = append(times, cachedTimeSlot{
				Time:      t.Time.String(),
				Used:      t.Used,
				Remaining: t.Remaining,
				Disabled:  t.Disabled,
			})
		}
		days = append(days, cachedDay{Date: d.Date.Format(domain.DateFormat), Times: times})
	}

	raw, err := json.Marshal(days)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}

	return nil
}

// Close закрывает соединение с Redis
func (c *SlotsCache) Close() error {
	return c.client.Close()
}
