package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/BKR-PickupService/internal/domain"
	orderRepo "github.com/m04kA/BKR-PickupService/internal/infra/storage/order"
	"github.com/m04kA/BKR-PickupService/internal/service/orders/models"
)

// Service сервис для работы с заказами
type Service struct {
	orderRepo OrderRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(repo OrderRepository, logger Logger) *Service {
	return &Service{
		orderRepo: repo,
		logger:    logger,
	}
}

// GetByID получает заказ по ID.
// Пользователь видит только собственный заказ; разграничение ролей
// администратора живёт во внешней подсистеме аутентификации.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%d for user=%d", id, userID)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if order.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to order id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainOrder(order), nil
}

// List получает заказы с гибкой фильтрацией по периоду дат самовывоза,
// статусу и пользователю. Используется админской частью витрины.
func (s *Service) List(ctx context.Context, req *models.GetOrdersRequest) (*models.OrderListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	orders, err := s.orderRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// UpdateStatus переводит заказ в новый статус с проверкой допустимости
// перехода. Переводы в cancelled/rejected фиксируют причину и время отмены.
func (s *Service) UpdateStatus(ctx context.Context, id int64, statusStr string, reason string) (*models.OrderResponse, error) {
	s.logger.Info("UpdateStatus: order id=%d -> %s", id, statusStr)

	status, err := models.ToDomainOrderStatus(statusStr)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for order id=%d", statusStr, id)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("UpdateStatus: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("UpdateStatus: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !order.Status.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for order id=%d",
			order.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if status == domain.StatusCancelled || status == domain.StatusRejected {
		err = s.orderRepo.Cancel(ctx, id, status, reason)
	} else {
		err = s.orderRepo.UpdateStatus(ctx, id, status)
	}
	if err != nil {
		s.logger.Error("UpdateStatus: failed to update order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: order id=%d is now %s", id, updated.Status)
	return models.FromDomainOrder(updated), nil
}

// Cancel отменяет заказ по инициативе клиента
func (s *Service) Cancel(ctx context.Context, id int64, userID int64, reason string) (*models.OrderResponse, error) {
	s.logger.Info("Cancel: order id=%d by user=%d", id, userID)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Cancel: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Cancel: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if order.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to order id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	if !order.CanBeCancelled() {
		s.logger.Warn("Cancel: order id=%d in status %s cannot be cancelled", id, order.Status)
		return nil, ErrCannotCancel
	}

	if err := s.orderRepo.Cancel(ctx, id, domain.StatusCancelled, reason); err != nil {
		s.logger.Error("Cancel: failed to cancel order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	cancelled, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: order id=%d cancelled", id)
	return models.FromDomainOrder(cancelled), nil
}
