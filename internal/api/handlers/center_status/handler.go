package center_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ctcplatform/CTC-VoiceService/internal/api/handlers"
	"github.com/ctcplatform/CTC-VoiceService/internal/service/agents"
)

const msgCenterNotFound = "центр не найден"

type Handler struct {
	service StatusService
	logger  Logger
}

func NewHandler(service StatusService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/centers/{centerId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	status, err := h.service.Status(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, agents.ErrCenterNotFound):
			h.logger.Warn("GET /centers/{id}/status - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)
		default:
			h.logger.Error("GET /centers/{id}/status - Failed to get status: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromCenterStatus(status))
}
