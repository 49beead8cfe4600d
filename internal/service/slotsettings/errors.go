package slotsettings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных настроек
	ErrInvalidInput = errors.New("invalid settings data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
