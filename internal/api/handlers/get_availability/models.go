package get_availability

import (
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	getAvailability "github.com/m04kA/BKR-PickupService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date       string     `json:"date"`
	MaxPerSlot int        `json:"maxPerSlot"`
	Slots      []TimeSlot `json:"slots"`
}

// TimeSlot один слот с занятостью
type TimeSlot struct {
	Time      string `json:"time"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Disabled  bool   `json:"disabled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			Time:      slot.Time.String(),
			Used:      slot.Used,
			Remaining: slot.Remaining,
			Disabled:  slot.Disabled,
		}
	}

	return &AvailabilityResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		MaxPerSlot: resp.MaxPerSlot,
		Slots:      slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметра date
func ToUseCaseRequest(dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailability.Request{Date: date}, nil
}
