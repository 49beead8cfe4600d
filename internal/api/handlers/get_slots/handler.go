package get_slots

import (
	"net/http"

	"github.com/m04kA/BKR-PickupService/internal/api/handlers"
)

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to build calendar: %v", err)
		handlers.RespondInternalErrorMsg(w, err.Error())
		return
	}

	h.logger.Info("GET /slots - Calendar served: days=%d, maxPerSlot=%d",
		len(result.Days), result.MaxPerSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
