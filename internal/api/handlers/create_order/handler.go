package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/BKR-PickupService/internal/api/handlers"
	"github.com/m04kA/BKR-PickupService/internal/api/middleware"
	createOrder "github.com/m04kA/BKR-PickupService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время самовывоза"
	msgDateNotAvailable   = "выбранная дата недоступна для самовывоза"
	msgTimeNotAvailable   = "выбранное время недоступно для самовывоза"
	msgSlotFull           = "выбранный слот уже занят"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /orders - Missing user ID in context")
		handlers.RespondJSON(w, http.StatusUnauthorized, handlers.ErrorResponse{Error: msgUnauthorized})
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /orders - Invalid pickup date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createOrder.ErrDateNotAvailable):
			h.logger.Warn("POST /orders - Date not available: user=%d, date=%s", userID, req.PickupDate)
			handlers.RespondConflict(w, msgDateNotAvailable)

		case errors.Is(err, createOrder.ErrTimeNotAvailable):
			h.logger.Warn("POST /orders - Time not available: user=%d, time=%s", userID, req.PickupTime)
			handlers.RespondConflict(w, msgTimeNotAvailable)

		case errors.Is(err, createOrder.ErrSlotFull):
			h.logger.Warn("POST /orders - Slot full: user=%d, date=%s, time=%s",
				userID, req.PickupDate, req.PickupTime)
			handlers.RespondConflict(w, msgSlotFull)

		default:
			h.logger.Error("POST /orders - Failed to create order: user=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created: id=%d, reference=%s, user=%d",
		result.Order.ID, result.Order.Reference, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
