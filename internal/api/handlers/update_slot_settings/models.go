package update_slot_settings

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/service/slotsettings/models"
)

// UpdateSettingsRequest HTTP request model.
// nil-поля не изменяют сохранённые настройки.
type UpdateSettingsRequest struct {
	DaysAhead          *int      `json:"daysAhead,omitempty"`
	OpenTime           *string   `json:"openTime,omitempty"`
	CloseTime          *string   `json:"closeTime,omitempty"`
	GranularityMinutes *int      `json:"granularityMinutes,omitempty"`
	SameDayCutoff      *string   `json:"sameDayCutoff,omitempty"`
	MaxPerSlot         *int      `json:"maxPerSlot,omitempty"`
	ExcludedWeekdays   *[]string `json:"excludedWeekdays,omitempty"`
}

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

// ToServiceRequest конвертирует HTTP request в запрос сервиса
func (r *UpdateSettingsRequest) ToServiceRequest() *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		DaysAhead:          r.DaysAhead,
		OpenTime:           r.OpenTime,
		CloseTime:          r.CloseTime,
		GranularityMinutes: r.GranularityMinutes,
		SameDayCutoff:      r.SameDayCutoff,
		MaxPerSlot:         r.MaxPerSlot,
		ExcludedWeekdays:   r.ExcludedWeekdays,
	}
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
