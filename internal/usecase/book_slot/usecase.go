package book_slot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

const (
	msgConfirmationEmail = "Un email de confirmation vous sera envoyé"
	msgReminderPapers    = "Pensez à apporter votre carte grise le jour du rendez-vous"
	msgDateFallback      = "Date à confirmer"
)

// UseCase use case бронирования слота через голосового агента
type UseCase struct {
	store  BookingStore
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store BookingStore, logger Logger) *UseCase {
	return &UseCase{
		store:  store,
		logger: logger,
	}
}

// Execute выполняет use case бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: center=%s, slot=%s, client=%s",
		req.CenterID, req.SlotID, req.Client.FullName())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Слот обязан принадлежать центру, на чей webhook пришел запрос
	if err := validateSlotForCenter(req.SlotID, req.CenterID); err != nil {
		uc.logger.Warn("BookSlot: slot %s rejected for center %s", req.SlotID, req.CenterID)
		return nil, err
	}

	// 3. Создаем бронирование
	booking, err := uc.store.Create(ctx, &domain.Booking{
		CenterID: req.CenterID,
		SlotID:   req.SlotID,
		Client:   req.Client,
		Status:   domain.StatusConfirmed,
	})
	if err != nil {
		uc.logger.Error("BookSlot: failed to create booking: center=%s, slot=%s, error=%v",
			req.CenterID, req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	// 4. Восстанавливаем дату из идентификатора слота для фразы подтверждения
	formattedDate := formatSlotDate(req.SlotID)

	// TODO: отправка email/SMS подтверждения и уведомление центра

	uc.logger.Info("BookSlot: booking created: booking_id=%s, center=%s, slot=%s",
		booking.ID, req.CenterID, req.SlotID)

	return &Response{
		Message:      fmt.Sprintf("Parfait ! Votre rendez-vous est confirmé pour %s", formattedDate),
		BookingID:    booking.ID,
		ClientName:   req.Client.FullName(),
		Vehicle:      req.Client.Vehicle(),
		LicensePlate: req.Client.LicensePlate,
		Confirmation: msgConfirmationEmail,
		Reminder:     msgReminderPapers,
	}, nil
}

// formatSlotDate извлекает дату и время из идентификатора вида
// slot_<center_id>_<YYYYMMDD>_<HHMM>. Идентификаторы без этих частей
// получают нейтральную заглушку.
func formatSlotDate(slotID string) string {
	parts := strings.Split(slotID, "_")
	if len(parts) < 4 {
		return msgDateFallback
	}

	datePart := parts[len(parts)-2]
	timePart := parts[len(parts)-1]

	slotTime, err := time.ParseInLocation("20060102 1504", datePart+" "+timePart, pariscal.Location())
	if err != nil {
		return msgDateFallback
	}

	return fmt.Sprintf("%s à %s", pariscal.FormatDate(slotTime), slotTime.Format(domain.TimeFormat))
}
