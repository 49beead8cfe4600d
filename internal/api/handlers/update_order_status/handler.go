package update_order_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BKR-PickupService/internal/api/handlers"
	"github.com/m04kA/BKR-PickupService/internal/service/orders"
)

const (
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStatusRequired     = "не указан целевой статус"
	msgOrderNotFound      = "заказ не найден"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/orders/{orderId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/status - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Status == "" {
		h.logger.Warn("PATCH /orders/{orderId}/status - Missing target status: id=%d", orderID)
		handlers.RespondBadRequest(w, msgStatusRequired)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), orderID, req.Status, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{orderId}/status - Order not found: id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, orders.ErrInvalidInput):
			h.logger.Warn("PATCH /orders/{orderId}/status - Invalid status: id=%d, error=%v", orderID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, orders.ErrInvalidTransition):
			h.logger.Warn("PATCH /orders/{orderId}/status - Invalid transition: id=%d, error=%v", orderID, err)
			handlers.RespondConflict(w, err.Error())

		default:
			h.logger.Error("PATCH /orders/{orderId}/status - Failed to update status: id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{orderId}/status - Order status updated: id=%d, status=%s", orderID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
