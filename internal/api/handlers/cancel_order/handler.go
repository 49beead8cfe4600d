package cancel_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/BKR-PickupService/internal/api/handlers"
	"github.com/m04kA/BKR-PickupService/internal/api/middleware"
	"github.com/m04kA/BKR-PickupService/internal/service/orders"
)

const (
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgOrderNotFound      = "заказ не найден"
	msgAccessDenied       = "доступ к заказу запрещен"
	msgCannotCancel       = "заказ уже нельзя отменить"
	msgUnauthorized       = "пользователь не аутентифицирован"
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

// Handle PATCH /api/v1/orders/{orderId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /orders/{orderId}/cancel - Missing user ID in context")
		handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: msgUnauthorized})
		return
	}

	vars := mux.Vars(r)
	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/cancel - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	var req CancelOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /orders/{orderId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), orderID, userID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{orderId}/cancel - Order not found: id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("PATCH /orders/{orderId}/cancel - Access denied: id=%d, user=%d", orderID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, orders.ErrCannotCancel):
			h.logger.Warn("PATCH /orders/{orderId}/cancel - Cannot cancel: id=%d", orderID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /orders/{orderId}/cancel - Failed to cancel order: id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{orderId}/cancel - Order cancelled: id=%d, user=%d", orderID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
