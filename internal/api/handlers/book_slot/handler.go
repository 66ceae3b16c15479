package book_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ctcplatform/CTC-VoiceService/internal/api/handlers"
	bookSlot "github.com/ctcplatform/CTC-VoiceService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры бронирования"
	msgSlotNotForCenter   = "слот не принадлежит этому центру"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /webhook/elevenlabs/{centerId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	var req BookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: center_id=%s, error=%v", centerID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(centerID))
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: center_id=%s, slot_id=%s, error=%v",
				centerID, req.SlotID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		case errors.Is(err, bookSlot.ErrSlotNotForCenter):
			h.logger.Warn("POST /book - Slot does not belong to center: center_id=%s, slot_id=%s",
				centerID, req.SlotID)
			handlers.RespondBadRequest(w, msgSlotNotForCenter)
		default:
			h.logger.Error("POST /book - Failed to book slot: center_id=%s, slot_id=%s, error=%v",
				centerID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Booking confirmed: center_id=%s, slot_id=%s, booking_id=%s",
		centerID, req.SlotID, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
