package get_slots

import (
	"context"

	getSlots "github.com/m04kA/BKR-PickupService/internal/usecase/get_slots"
)

type GetSlotsUseCase interface {
	Execute(ctx context.Context) (*getSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
