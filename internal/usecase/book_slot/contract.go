package book_slot

import (
	"context"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
