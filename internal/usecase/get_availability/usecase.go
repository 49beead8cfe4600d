package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/internal/slots"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// Окно доступности для точечного просмотра одной даты: один заказ на
// слот, 09:00–17:30 с шагом 30 минут. В отличие от общего календаря,
// здесь намеренно нет исключения дней недели и отсечки: эндпоинт
// показывает занятость любой даты, включая закрытые дни: это просмотр
// конкретного дня, а не витрина доступных.
const (
	availabilityOpenTime    = "09:00"
	availabilityCloseTime   = "18:00" // граница исключающая: последний слот 17:30
	availabilityGranularity = 30
	availabilityMaxPerSlot  = 1
)

// UseCase use case для получения доступности слотов одной даты
type UseCase struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(orderRepo OrderRepository, logger Logger) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	cfg, err := domain.NewSlotConfig(
		1,
		types.MustTimeString(availabilityOpenTime),
		types.MustTimeString(availabilityCloseTime),
		availabilityGranularity,
		"",
		availabilityMaxPerSlot,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: build slot config: %v", ErrInternal, err)
	}

	day := slots.GenerateDay(req.Date, cfg)

	facts, err := uc.orderRepo.GetPickupFacts(ctx, day.Date, day.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get pickup facts for %s: %v",
			day.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get pickup facts: %v", ErrInternal, err)
	}

	resolved := slots.Resolve([]domain.DaySlots{day}, facts, availabilityMaxPerSlot)

	uc.logger.Info("GetAvailability: date=%s, %d slots, %d pickup facts",
		day.Date.Format(domain.DateFormat), len(resolved[0].Times), len(facts))

	return &Response{
		Date:       day.Date,
		MaxPerSlot: availabilityMaxPerSlot,
		Slots:      resolved[0].Times,
	}, nil
}
