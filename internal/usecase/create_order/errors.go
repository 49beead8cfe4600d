package create_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateNotAvailable возвращается, когда дата самовывоза не предлагается:
	// прошлое, закрытый день недели, после отсечки или за горизонтом календаря
	ErrDateNotAvailable = errors.New("pickup date is not available")

	// ErrTimeNotAvailable возвращается, когда время не совпадает ни с одним слотом даты
	ErrTimeNotAvailable = errors.New("pickup time is not available")

	// ErrSlotFull возвращается, когда слот уже занят до ёмкости
	ErrSlotFull = errors.New("pickup slot is full")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
