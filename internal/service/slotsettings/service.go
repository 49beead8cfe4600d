package slotsettings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	settingsRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/slotsettings"
	"github.com/m04kA/BKR-PickupService/internal/service/slotsettings/models"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

// Service сервис управления настройками расписания самовывоза
type Service struct {
	settingsRepo SettingsRepository
	defaults     domain.SlotSettings
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, defaults domain.SlotSettings, logger Logger) *Service {
	return &Service{
		settingsRepo: repo,
		defaults:     defaults,
		logger:       logger,
	}
}

// Get возвращает действующие настройки расписания.
// При отсутствии сохранённой строки отдаются дефолты из конфигурации.
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("Get: no stored settings, returning configured defaults")
			return models.FromDomainSettings(&s.defaults), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update применяет частичное обновление настроек и сохраняет результат.
// База для слияния - сохранённые настройки либо дефолты конфигурации.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: repository error: %v", err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		copied := s.defaults
		current = &copied
	}

	merged, err := s.merge(current, req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// Валидация целостности: собираемость SlotConfig гарантирует, что
	// генератор не получит некорректное расписание
	if _, err := merged.ToSlotConfig(); err != nil {
		s.logger.Warn("Update: inconsistent settings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	saved, err := s.settingsRepo.Upsert(ctx, merged)
	if err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings saved (daysAhead=%d, window=%s-%s, step=%d, maxPerSlot=%d)",
		saved.DaysAhead, saved.OpenTime, saved.CloseTime, saved.GranularityMinutes, saved.MaxPerSlot)

	return models.FromDomainSettings(saved), nil
}

func (s *Service) merge(current *domain.SlotSettings, req *models.UpdateSettingsRequest) (*domain.SlotSettings, error) {
	merged := *current

	if req.DaysAhead != nil {
		if *req.DaysAhead < domain.MinDaysAhead || *req.DaysAhead > domain.MaxDaysAhead {
			return nil, fmt.Errorf("%w: daysAhead must be between %d and %d",
				ErrInvalidInput, domain.MinDaysAhead, domain.MaxDaysAhead)
		}
		merged.DaysAhead = *req.DaysAhead
	}

	if req.OpenTime != nil {
		ts, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
		}
		merged.OpenTime = ts
	}

	if req.CloseTime != nil {
		ts, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
		}
		merged.CloseTime = ts
	}

	if req.GranularityMinutes != nil {
		if *req.GranularityMinutes < domain.MinGranularityMinutes || *req.GranularityMinutes > domain.MaxGranularityMinutes {
			return nil, fmt.Errorf("%w: granularityMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinGranularityMinutes, domain.MaxGranularityMinutes)
		}
		merged.GranularityMinutes = *req.GranularityMinutes
	}

	if req.SameDayCutoff != nil {
		if *req.SameDayCutoff == "" {
			merged.SameDayCutoff = "" // пустая строка снимает отсечку
		} else {
			ts, err := types.NewTimeStringFromString(*req.SameDayCutoff)
			if err != nil {
				return nil, fmt.Errorf("%w: sameDayCutoff: %v", ErrInvalidInput, err)
			}
			merged.SameDayCutoff = ts
		}
	}

	if req.MaxPerSlot != nil {
		if *req.MaxPerSlot < domain.MinMaxPerSlot || *req.MaxPerSlot > domain.MaxMaxPerSlot {
			return nil, fmt.Errorf("%w: maxPerSlot must be between %d and %d",
				ErrInvalidInput, domain.MinMaxPerSlot, domain.MaxMaxPerSlot)
		}
		merged.MaxPerSlot = *req.MaxPerSlot
	}

	if req.ExcludedWeekdays != nil {
		weekdays := make([]time.Weekday, 0, len(*req.ExcludedWeekdays))
		for _, name := range *req.ExcludedWeekdays {
			wd, err := domain.ParseWeekday(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			weekdays = append(weekdays, wd)
		}
		merged.ExcludedWeekdays = weekdays
	}

	return &merged, nil
}
