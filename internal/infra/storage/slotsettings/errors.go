package slotsettings

import "errors"

var (
	// ErrSettingsNotFound возвращается, когда настройки расписания ещё не сохранены
	ErrSettingsNotFound = errors.New("slotsettings.repository: settings not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slotsettings.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slotsettings.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slotsettings.repository: failed to scan row")
)
