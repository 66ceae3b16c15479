package get_slots

import (
	"context"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// UseCase use case получения и озвучивания доступных слотов
type UseCase struct {
	fetcher      SlotFetcher
	timeProvider TimeProvider
	logger       Logger

	// respectClientRange при false присланный платформой диапазон дат
	// игнорируется и всегда возвращается полное будущее окно
	respectClientRange bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(fetcher SlotFetcher, respectClientRange bool, logger Logger) *UseCase {
	return &UseCase{
		fetcher:            fetcher,
		timeProvider:       &ParisTimeProvider{},
		logger:             logger,
		respectClientRange: respectClientRange,
	}
}

// Execute выполняет use case. Для корректного запроса ошибок не бывает:
// сбои провайдера выглядят как пустой список, нераспознанный день - как
// разговорное уточнение в Message.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlots: center=%s, vehicle_type=%s, preference=%s, specific_day=%q",
		req.CenterID, req.VehicleType, req.Preference, req.SpecificDay)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее парижское время
	now := uc.timeProvider.Now()
	today := pariscal.DateOf(now)

	// 3. Получаем слоты; сбой провайдера здесь неотличим от пустого ответа
	slots := uc.fetcher.FetchSlots(ctx, req.CenterID, req.VehicleType, req.Preference)

	// 4. При включенном respect_client_range сужаем снимок до присланного
	// диапазона; иначе диапазон игнорируется целиком
	if uc.respectClientRange {
		slots = clampToRange(slots, req.StartDate, req.EndDate)
	}

	// 5. Окно выдачи: от сегодня до последнего слота, либо фиксированные
	// 14 дней вперед, когда слотов нет
	start, end := availabilityWindow(slots, today)

	// 6. Форматируем каждый слот
	formatted := make([]FormattedSlot, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, formatSlot(slot, today))
	}

	// 7. Группируем по дням и полудням
	days := buildDailyAvailability(formatted, today, start, end)
	halfDays := buildHalfDays(days)

	// 8. Синтезируем произносимую фразу
	message := synthesizeOffer(halfDays, len(slots) > 0)

	// 9. Запрос конкретного дня перекрывает общее предложение
	if req.SpecificDay != "" {
		message = specificDayResponse(req, days, today)
	}

	response := &Response{
		Message:           message,
		Slots:             formatted,
		DailyAvailability: days,
		DayMessages:       buildDayMessages(days),
	}
	if len(slots) == 0 {
		response.Suggestion = msgSuggestion
	}

	uc.logger.Info("GetSlots: center=%s, slots=%d, half_days=%d",
		req.CenterID, len(slots), len(halfDays))

	return response, nil
}

// availabilityWindow возвращает границы окна выдачи по снимку слотов
func availabilityWindow(slots []domain.Slot, today time.Time) (time.Time, time.Time) {
	if len(slots) == 0 {
		return today, today.AddDate(0, 0, domain.DefaultLookaheadDays)
	}

	latest := today
	for _, slot := range slots {
		if date := slot.Date(); date.After(latest) {
			latest = date
		}
	}
	return today, latest
}

// clampToRange оставляет слоты с датой внутри [start; end]; nil-границы
// не ограничивают
func clampToRange(slots []domain.Slot, start, end *time.Time) []domain.Slot {
	if start == nil && end == nil {
		return slots
	}

	clamped := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		date := slot.Date()
		if start != nil && date.Before(pariscal.DateOf(*start)) {
			continue
		}
		if end != nil && date.After(pariscal.DateOf(*end)) {
			continue
		}
		clamped = append(clamped, slot)
	}
	return clamped
}
