package get_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ctcplatform/CTC-VoiceService/internal/api/handlers"
	getSlots "github.com/ctcplatform/CTC-VoiceService/internal/usecase/get_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
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

// Handle POST /webhook/elevenlabs/{centerId}/get_slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	var req GetSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /get_slots - Invalid request body: center_id=%s, error=%v", centerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(centerID)
	if err != nil {
		h.logger.Warn("POST /get_slots - Failed to parse request: center_id=%s, error=%v", centerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("POST /get_slots - Invalid input: center_id=%s, error=%v", centerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("POST /get_slots - Failed to get slots: center_id=%s, error=%v", centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /get_slots - Slots returned: center_id=%s, slots=%d, specific_day=%q",
		centerID, len(result.Slots), req.SpecificDay)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
