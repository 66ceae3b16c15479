package get_slots

import (
	"context"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// SlotFetcher адаптер получения слотов у провайдера расписания.
// Сбои провайдера поглощаются адаптером и выглядят как пустой список.
type SlotFetcher interface {
	FetchSlots(ctx context.Context, centerID string, vehicleType domain.VehicleType, preference domain.TimePreference) []domain.Slot
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ParisTimeProvider реальный провайдер времени: текущее время Europe/Paris
type ParisTimeProvider struct{}

// Now возвращает текущее парижское время
func (p *ParisTimeProvider) Now() time.Time {
	return pariscal.Now()
}
