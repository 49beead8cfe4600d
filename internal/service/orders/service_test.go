package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	orderRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/order"
	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
	"github.com/m04kA/BKR-PickupService/pkg/types"
)

type fakeOrderRepo struct {
	orders map[int64]*domain.Order

	listResult []*domain.Order
	listFilter domain.OrdersFilter
	listErr    error
}

func newFakeOrderRepo(orders ...*domain.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[int64]*domain.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, orderRepo.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrderRepo) ListWithFilter(_ context.Context, filter domain.OrdersFilter) ([]*domain.Order, error) {
	f.listFilter = filter
	return f.listResult, f.listErr
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := f.orders[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) Cancel(_ context.Context, id int64, status domain.OrderStatus, reason string) error {
	o, ok := f.orders[id]
	if !ok {
		return orderRepo.ErrOrderNotFound
	}
	now := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)
	o.Status = status
	o.CancellationReason = &reason
	o.CancelledAt = &now
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testOrder(id, userID int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:            id,
		Reference:     "d4c8a7de-0001-4cad-9f5e-5a1d3c2b1a00",
		UserID:        userID,
		CustomerName:  "Анна Смирнова",
		CustomerPhone: "+7 900 123-45-67",
		Items:         []domain.OrderItem{{ProductID: 1, Name: "Багет", UnitPrice: 120, Quantity: 1}},
		TotalPrice:    120,
		PickupDate:    time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		PickupTime:    types.MustTimeString("10:00"),
		Status:        status,
	}
}

func TestGetByID_ReturnsOwnOrder(t *testing.T) {
	svc := NewService(newFakeOrderRepo(testOrder(1, 42, domain.StatusPending)), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, 42)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "10:00", resp.PickupTime)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), noopLogger{})

	_, err := svc.GetByID(context.Background(), 99, 42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetByID_ForeignOrder(t *testing.T) {
	svc := NewService(newFakeOrderRepo(testOrder(1, 42, domain.StatusPending)), noopLogger{})

	_, err := svc.GetByID(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestList_PassesFilterToRepository(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.listResult = []*domain.Order{testOrder(1, 42, domain.StatusPaid)}
	svc := NewService(repo, noopLogger{})

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	status := "paid"
	userID := int64(42)

	resp, err := svc.List(context.Background(), &models.GetOrdersRequest{
		UserID:    &userID,
		StartDate: &from,
		EndDate:   &to,
		Status:    &status,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Total)
	require.NotNil(t, repo.listFilter.Status)
	assert.Equal(t, domain.StatusPaid, *repo.listFilter.Status)
	assert.Equal(t, &from, repo.listFilter.StartDate)
	assert.Equal(t, &userID, repo.listFilter.UserID)
	assert.False(t, repo.listFilter.IncludeInactive)
}

func TestList_UnknownStatus(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), noopLogger{})

	status := "shipped"
	_, err := svc.List(context.Background(), &models.GetOrdersRequest{Status: &status})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(1, 42, domain.StatusPaid))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, "ready", "")
	require.NoError(t, err)
	assert.Equal(t, "ready", resp.Status)
}

func TestUpdateStatus_RejectedTransition(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(1, 42, domain.StatusCompleted))
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, "pending", "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(1, 42, domain.StatusPending))
	svc := NewService(repo, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, "shipped", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_RejectionStoresReason(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(1, 42, domain.StatusPending))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, "rejected", "нет ингредиентов")
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "нет ингредиентов", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeOrderRepo(), noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, "paid", "")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestCancel_OwnPendingOrder(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(1, 42, domain.StatusPending))
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, 42, "передумала")
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "передумала", *resp.CancellationReason)
}

func TestCancel_ForeignOrder(t *testing.T) {
	repo := newFakeOrderRepo(testOrder(1, 42, domain.StatusPending))
	svc := NewService(repo, noopLogger{})

	_, err := svc.Cancel(context.Background(), 1, 7, "")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TooLate(t *testing.T) {
	tests := []domain.OrderStatus{domain.StatusReady, domain.StatusCompleted, domain.StatusCancelled, domain.StatusRejected}

	for _, status := range tests {
		t.Run(string(status), func(t *testing.T) {
			repo := newFakeOrderRepo(testOrder(1, 42, status))
			svc := NewService(repo, noopLogger{})

			_, err := svc.Cancel(context.Background(), 1, 42, "")
			assert.ErrorIs(t, err, ErrCannotCancel)
		})
	}
}

func TestList_RepositoryFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	repo.listErr = errors.New("query timeout")
	svc := NewService(repo, noopLogger{})

	_, err := svc.List(context.Background(), &models.GetOrdersRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}
