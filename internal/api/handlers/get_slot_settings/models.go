package get_slot_settings

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/service/slotsettings/models"
)

// SettingsResponse HTTP response model
type SettingsResponse struct {
	DaysAhead          int      `json:"daysAhead"`
	OpenTime           string   `json:"openTime"`
	CloseTime          string   `json:"closeTime"`
	GranularityMinutes int      `json:"granularityMinutes"`
	SameDayCutoff      string   `json:"sameDayCutoff,omitempty"`
	MaxPerSlot         int      `json:"maxPerSlot"`
	ExcludedWeekdays   []string `json:"excludedWeekdays"`
	UpdatedAt          string   `json:"updatedAt,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(s *models.SettingsResponse) *SettingsResponse {
	resp := &SettingsResponse{
		DaysAhead:          s.DaysAhead,
		OpenTime:           s.OpenTime,
		CloseTime:          s.CloseTime,
		GranularityMinutes: s.GranularityMinutes,
		SameDayCutoff:      s.SameDayCutoff,
		MaxPerSlot:         s.MaxPerSlot,
		ExcludedWeekdays:   s.ExcludedWeekdays,
	}

	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = s.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}
