package get_order

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
	msgInvalidOrderID = "некорректный идентификатор заказа"
	msgOrderNotFound  = "заказ не найден"
	msgAccessDenied   = "доступ к заказу запрещен"
	msgUnauthorized   = "пользователь не аутентифицирован"
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

// Handle GET /api/v1/orders/{orderId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /orders/{orderId} - Missing user ID in context")
		handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: msgUnauthorized})
		return
	}

	vars := mux.Vars(r)
	orderID, err := strconv.ParseInt(vars["orderId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /orders/{orderId} - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	result, err := h.service.GetByID(r.Context(), orderID, userID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("GET /orders/{orderId} - Order not found: id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)

		case errors.Is(err, orders.ErrAccessDenied):
			h.logger.Warn("GET /orders/{orderId} - Access denied: id=%d, user=%d", orderID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /orders/{orderId} - Failed to fetch order: id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
