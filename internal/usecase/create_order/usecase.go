package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	settingsRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/slotsettings"
	"github.com/m04kA/BKR-PickupService/internal/slots"
)

// UseCase use case для создания заказа самовывоза
type UseCase struct {
	orderRepo    OrderRepository
	settingsRepo SettingsRepository
	defaults     domain.SlotSettings
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	settingsRepo SettingsRepository,
	defaults domain.SlotSettings,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		defaults:     defaults,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания заказа.
//
// Проверка занятости слота - advisory: чтение счётчика и вставка заказа
// не связаны транзакцией или блокировкой, два одновременных запроса
// могут оба увидеть последнее свободное место и оба создать заказ.
// Такой слот дальше отображается как полный (Remaining насыщается в
// нуле), а разрешение перебронирования - операционное решение магазина.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: user=%d, date=%s, time=%s, items=%d",
		req.UserID, req.PickupDate.Format(domain.DateFormat), req.PickupTime, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время и настройки расписания
	now := uc.timeProvider.Now()

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("CreateOrder: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings == nil {
		settings = &uc.defaults
	}

	cfg, err := settings.ToSlotConfig()
	if err != nil {
		uc.logger.Error("CreateOrder: stored settings are invalid: %v", err)
		return nil, fmt.Errorf("%w: invalid slot settings: %v", ErrInternal, err)
	}

	// 3. Дата и время должны совпадать со слотом актуального календаря.
	// Это разом отсекает прошлое, закрытые дни, сегодняшний день после
	// отсечки, даты за горизонтом и время мимо сетки слотов.
	calendar := slots.Generate(now, cfg)

	day := findDay(calendar, req)
	if day == nil {
		uc.logger.Warn("CreateOrder: date %s is not available", req.PickupDate.Format(domain.DateFormat))
		return nil, ErrDateNotAvailable
	}
	if !day.HasTime(req.PickupTime) {
		uc.logger.Warn("CreateOrder: time %s is not offered on %s",
			req.PickupTime, req.PickupDate.Format(domain.DateFormat))
		return nil, ErrTimeNotAvailable
	}

	// 4. Advisory-проверка занятости слота
	facts, err := uc.orderRepo.GetPickupFacts(ctx, day.Date, day.Date)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to get pickup facts: %v", err)
		return nil, fmt.Errorf("%w: failed to get pickup facts: %v", ErrInternal, err)
	}

	resolved := slots.Resolve([]domain.DaySlots{*day}, facts, cfg.MaxPerSlot)
	slot := resolved[0].SlotAt(req.PickupTime)
	if slot == nil || slot.Disabled {
		uc.logger.Warn("CreateOrder: slot %s %s is full",
			req.PickupDate.Format(domain.DateFormat), req.PickupTime)
		return nil, ErrSlotFull
	}

	// 5. Создаём заказ
	order := &domain.Order{
		Reference:     uuid.NewString(),
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Items:         toDomainItems(req.Items),
		TotalPrice:    totalPrice(req.Items),
		Notes:         req.Notes,
		PickupDate:    day.Date,
		PickupTime:    req.PickupTime,
		Status:        domain.StatusPending,
	}

	created, err := uc.orderRepo.Create(ctx, order)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to create order: %v", err)
		return nil, fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateOrder: created order id=%d reference=%s, slot %s %s (%d/%d used)",
		created.ID, created.Reference, created.PickupDate.Format(domain.DateFormat),
		created.PickupTime, slot.Used+1, cfg.MaxPerSlot)

	return &Response{Order: created}, nil
}

// findDay ищет в календаре день с датой самовывоза из запроса
func findDay(calendar []domain.DaySlots, req *Request) *domain.DaySlots {
	y, m, d := req.PickupDate.Date()
	for i := range calendar {
		cy, cm, cd := calendar[i].Date.Date()
		if cy == y && cm == m && cd == d {
			return &calendar[i]
		}
	}
	return nil
}
