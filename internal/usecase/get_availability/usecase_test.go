package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

type fakeOrderRepo struct {
	facts []domain.PickupFact
	err   error

	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeOrderRepo) GetPickupFacts(_ context.Context, from, to time.Time) ([]domain.PickupFact, error) {
	f.gotFrom = from
	f.gotTo = to
	return f.facts, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeOrderRepo{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_FullDayGrid(t *testing.T) {
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	uc := NewUseCase(&fakeOrderRepo{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, date, resp.Date)
	assert.Equal(t, 1, resp.MaxPerSlot)

	// 09:00–17:30 с шагом 30 минут, граница 18:00 исключается
	require.Len(t, resp.Slots, 18)
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
	assert.Equal(t, "17:30", resp.Slots[len(resp.Slots)-1].Time.String())
}

func TestExecute_SingleOrderDisablesSlot(t *testing.T) {
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{
		facts: []domain.PickupFact{
			{PickupDate: date, PickupTime: types.MustTimeString("10:30"), Status: domain.StatusPaid},
		},
	}
	uc := NewUseCase(orderRepo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		if slot.Time.String() == "10:30" {
			assert.Equal(t, 1, slot.Used)
			assert.True(t, slot.Disabled)
		} else {
			assert.Equal(t, 0, slot.Used)
			assert.False(t, slot.Disabled)
		}
	}
}

func TestExecute_CancelledOrderDoesNotOccupySlot(t *testing.T) {
	date := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{
		facts: []domain.PickupFact{
			{PickupDate: date, PickupTime: types.MustTimeString("10:30"), Status: domain.StatusCancelled},
		},
	}
	uc := NewUseCase(orderRepo, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.False(t, slot.Disabled)
	}
}

func TestExecute_FactsQueriedForSingleDate(t *testing.T) {
	date := time.Date(2025, 6, 7, 14, 30, 0, 0, time.UTC)
	orderRepo := &fakeOrderRepo{}
	uc := NewUseCase(orderRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// время внутри запрошенной даты отбрасывается
	want := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, orderRepo.gotFrom)
	assert.Equal(t, want, orderRepo.gotTo)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	orderRepo := &fakeOrderRepo{err: errors.New("query timeout")}
	uc := NewUseCase(orderRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
