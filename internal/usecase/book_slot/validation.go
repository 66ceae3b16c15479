package book_slot

import (
	"fmt"
	"strings"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CenterID == "" {
		return fmt.Errorf("%w: centerID is required", ErrInvalidInput)
	}
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotID is required", ErrInvalidInput)
	}
	if req.Client.FirstName == "" || req.Client.LastName == "" {
		return fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}
	if req.Client.Phone == "" {
		return fmt.Errorf("%w: client phone is required", ErrInvalidInput)
	}
	return nil
}

// validateSlotForCenter проверяет, что слот принадлежит центру: полный
// идентификатор обязан начинаться с "slot_<center_id>"
func validateSlotForCenter(slotID, centerID string) error {
	if !strings.HasPrefix(slotID, domain.SlotIDPrefix+centerID) {
		return ErrSlotNotForCenter
	}
	return nil
}
