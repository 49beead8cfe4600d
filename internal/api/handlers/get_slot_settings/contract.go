package get_slot_settings

import (
	"context"

	"github.com/m04kA/BKR-PickupService/internal/service/slotsettings/models"
)

type SettingsService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
