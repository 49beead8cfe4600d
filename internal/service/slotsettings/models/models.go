package models

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
)

// SettingsResponse модель настроек расписания для отдачи наружу
type SettingsResponse struct {
	DaysAhead          int
	OpenTime           string
	CloseTime          string
	GranularityMinutes int
	SameDayCutoff      string
	MaxPerSlot         int
	ExcludedWeekdays   []string
	UpdatedAt          time.Time
}

// UpdateSettingsRequest частичное обновление настроек.
// nil-поля остаются без изменений.
type UpdateSettingsRequest struct {
	DaysAhead          *int
	OpenTime           *string
	CloseTime          *string
	GranularityMinutes *int
	SameDayCutoff      *string
	MaxPerSlot         *int
	ExcludedWeekdays   *[]string
}

// FromDomainSettings конвертирует доменные настройки в модель ответа
func FromDomainSettings(s *domain.SlotSettings) *SettingsResponse {
	weekdays := make([]string, len(s.ExcludedWeekdays))
	for i, wd := range s.ExcludedWeekdays {
		weekdays[i] = wd.String()
	}

	return &SettingsResponse{
		DaysAhead:          s.DaysAhead,
		OpenTime:           s.OpenTime.String(),
		CloseTime:          s.CloseTime.String(),
		GranularityMinutes: s.GranularityMinutes,
		SameDayCutoff:      s.SameDayCutoff.String(),
		MaxPerSlot:         s.MaxPerSlot,
		ExcludedWeekdays:   weekdays,
		UpdatedAt:          s.UpdatedAt,
	}
}
