package domain

// Default slot schedule values, used when no settings row exists
const (
	DefaultDaysAhead          = 14
	DefaultGranularityMinutes = 30
	DefaultMaxPerSlot         = 5
)

// Business validation constants
const (
	MinDaysAhead           = 1
	MaxDaysAhead           = 90
	MinGranularityMinutes  = 5
	MaxGranularityMinutes  = 240
	MinMaxPerSlot          = 0
	MaxMaxPerSlot          = 100
	MaxNotesLength         = 500
	MaxCustomerNameLength  = 200
	MaxCustomerPhoneLength = 32
	MaxOrderItems          = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NonCountingStatuses статусы заказов, не занимающие слот.
// Используются при подсчёте занятости слотов.
var NonCountingStatuses = []OrderStatus{
	StatusCancelled,
	StatusRejected,
}
