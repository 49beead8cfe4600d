package get_slots

import (
	"github.com/m04kA/BKR-PickupService/internal/domain"
	getSlots "github.com/m04kA/BKR-PickupService/internal/usecase/get_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Slots      []DaySlots `json:"slots"`
	MaxPerSlot int        `json:"maxPerSlot"`
}

// DaySlots один день календаря самовывоза
type DaySlots struct {
	Date  string     `json:"date"`
	Times []TimeSlot `json:"times"`
}

// TimeSlot один слот с занятостью
type TimeSlot struct {
	Time      string `json:"time"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Disabled  bool   `json:"disabled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	days := make([]DaySlots, len(resp.Days))
	for i, day := range resp.Days {
		times := make([]TimeSlot, len(day.Times))
		for j, slot := range day.Times {
			times[j] = TimeSlot{
				Time:      slot.Time.String(),
				Used:      slot.Used,
				Remaining: slot.Remaining,
				Disabled:  slot.Disabled,
			}
		}
		days[i] = DaySlots{
			Date:  day.Date.Format(domain.DateFormat),
			Times: times,
		}
	}

	return &SlotsResponse{
		Slots:      days,
		MaxPerSlot: resp.MaxPerSlot,
	}
}
