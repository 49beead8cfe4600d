package slotsettings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	settingsRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/slotsettings"
	"github.com/m04kA/BKR-PickupService/internal/service/slotsettings/models"
	"github.com/m04kA/BKR-PickupService/pkg/ptr"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

type fakeSettingsRepo struct {
	stored *domain.SlotSettings
	getErr error

	upserted *domain.SlotSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.SlotSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	copied := *f.stored
	return &copied, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings *domain.SlotSettings) (*domain.SlotSettings, error) {
	copied := *settings
	copied.ID = 1
	copied.UpdatedAt = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f.upserted = &copied
	return &copied, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testDefaults() domain.SlotSettings {
	return domain.SlotSettings{
		DaysAhead:          14,
		OpenTime:           types.MustTimeString("09:00"),
		CloseTime:          types.MustTimeString("18:00"),
		GranularityMinutes: 30,
		SameDayCutoff:      types.MustTimeString("12:00"),
		MaxPerSlot:         5,
		ExcludedWeekdays:   []time.Weekday{time.Sunday},
	}
}

func TestGet_ReturnsStoredSettings(t *testing.T) {
	stored := testDefaults()
	stored.DaysAhead = 7
	svc := NewService(&fakeSettingsRepo{stored: &stored}, testDefaults(), noopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, resp.DaysAhead)
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{}, testDefaults(), noopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 14, resp.DaysAhead)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, "18:00", resp.CloseTime)
	assert.Equal(t, []string{"Sunday"}, resp.ExcludedWeekdays)
}

func TestGet_RepositoryFailure(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{getErr: errors.New("connection refused")}, testDefaults(), noopLogger{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_PartialUpdateKeepsOtherFields(t *testing.T) {
	stored := testDefaults()
	repo := &fakeSettingsRepo{stored: &stored}
	svc := NewService(repo, testDefaults(), noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		MaxPerSlot: ptr.Ptr(3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.MaxPerSlot)
	// остальные поля не тронуты
	assert.Equal(t, 14, resp.DaysAhead)
	assert.Equal(t, "09:00", resp.OpenTime)
	assert.Equal(t, 30, resp.GranularityMinutes)
}

func TestUpdate_MergesOntoDefaultsWhenNoRow(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo, testDefaults(), noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		DaysAhead: ptr.Ptr(21),
	})
	require.NoError(t, err)

	assert.Equal(t, 21, resp.DaysAhead)
	assert.Equal(t, 5, resp.MaxPerSlot)
	require.NotNil(t, repo.upserted)
}

func TestUpdate_EmptyCutoffClearsIt(t *testing.T) {
	stored := testDefaults()
	repo := &fakeSettingsRepo{stored: &stored}
	svc := NewService(repo, testDefaults(), noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		SameDayCutoff: ptr.Ptr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.SameDayCutoff)
}

func TestUpdate_ReplacesExcludedWeekdays(t *testing.T) {
	stored := testDefaults()
	repo := &fakeSettingsRepo{stored: &stored}
	svc := NewService(repo, testDefaults(), noopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		ExcludedWeekdays: ptr.Ptr([]string{"Saturday", "Sunday"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Saturday", "Sunday"}, resp.ExcludedWeekdays)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{"days ahead below minimum", &models.UpdateSettingsRequest{DaysAhead: ptr.Ptr(0)}},
		{"days ahead above maximum", &models.UpdateSettingsRequest{DaysAhead: ptr.Ptr(120)}},
		{"malformed open time", &models.UpdateSettingsRequest{OpenTime: ptr.Ptr("часы")}},
		{"malformed cutoff", &models.UpdateSettingsRequest{SameDayCutoff: ptr.Ptr("25:99")}},
		{"granularity too small", &models.UpdateSettingsRequest{GranularityMinutes: ptr.Ptr(1)}},
		{"negative capacity", &models.UpdateSettingsRequest{MaxPerSlot: ptr.Ptr(-1)}},
		{"unknown weekday", &models.UpdateSettingsRequest{ExcludedWeekdays: ptr.Ptr([]string{"Caturday"})}},
		{"open after close", &models.UpdateSettingsRequest{
			OpenTime:  ptr.Ptr("19:00"),
			CloseTime: ptr.Ptr("10:00"),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stored := testDefaults()
			svc := NewService(&fakeSettingsRepo{stored: &stored}, testDefaults(), noopLogger{})

			_, err := svc.Update(context.Background(), tc.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
