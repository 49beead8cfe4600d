package get_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/internal/infra/cache"
	settingsRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/slotsettings"
	"github.com/m04kA/BKR-PickupService/internal/slots"
)

// UseCase use case для получения календаря слотов самовывоза
type UseCase struct {
	orderRepo    OrderRepository
	settingsRepo SettingsRepository
	cache        CalendarCache
	defaults     domain.SlotSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// defaults - настройки расписания из config.toml, применяются пока в БД
// нет сохранённой строки настроек. calendarCache может быть nil.
func NewUseCase(
	orderRepo OrderRepository,
	settingsRepo SettingsRepository,
	calendarCache CalendarCache,
	defaults domain.SlotSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		cache:        calendarCache,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря слотов
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. Загружаем настройки расписания (или дефолты из конфигурации)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings == nil {
		settings = &uc.defaults
		uc.logger.Info("GetSlots: no stored settings, using configured defaults")
	}

	cfg, err := settings.ToSlotConfig()
	if err != nil {
		uc.logger.Error("GetSlots: stored settings are invalid: %v", err)
		return nil, fmt.Errorf("%w: invalid slot settings: %v", ErrInternal, err)
	}

	// 2. Пробуем кеш. Ключ включает версию настроек и признак пройденной
	// отсечки: смена расписания и наступление отсечки инвалидируют кеш
	// сами собой. Короткое окно устаревших счётчиков занятости допустимо:
	// данные advisory в любом случае, но структура календаря (первый
	// предлагаемый день) устаревать не должна.
	cacheKey := cache.CalendarKey(now, slots.PastCutoff(now, cfg), settings.UpdatedAt.Unix(), cfg.MaxPerSlot)
	if uc.cache != nil {
		cached, hit, err := uc.cache.GetCalendar(ctx, cacheKey)
		if err != nil {
			uc.logger.Warn("GetSlots: cache read failed: %v", err)
		} else if hit {
			uc.logger.Info("GetSlots: served %d days from cache", len(cached))
			return &Response{Days: cached, MaxPerSlot: cfg.MaxPerSlot}, nil
		}
	}

	// 3. Генерируем календарь
	calendar := slots.Generate(now, cfg)
	if len(calendar) == 0 {
		uc.logger.Info("GetSlots: empty calendar for now=%s", now.Format(domain.DateFormat))
		return &Response{Days: calendar, MaxPerSlot: cfg.MaxPerSlot}, nil
	}

	// 4. Читаем факты занятости, ограничивая период границами календаря
	from := calendar[0].Date
	to := calendar[len(calendar)-1].Date
	facts, err := uc.orderRepo.GetPickupFacts(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetSlots: failed to get pickup facts: %v", err)
		return nil, fmt.Errorf("%w: failed to get pickup facts: %v", ErrInternal, err)
	}

	// 5. Размечаем занятость
	resolved := slots.Resolve(calendar, facts, cfg.MaxPerSlot)

	if uc.cache != nil {
		if err := uc.cache.SetCalendar(ctx, cacheKey, resolved); err != nil {
			uc.logger.Warn("GetSlots: cache write failed: %v", err)
		}
	}

	uc.logger.Info("GetSlots: resolved %d days, %d pickup facts, maxPerSlot=%d",
		len(resolved), len(facts), cfg.MaxPerSlot)

	return &Response{Days: resolved, MaxPerSlot: cfg.MaxPerSlot}, nil
}
