package get_slots

import (
	"context"

	getSlots "github.com/ctcplatform/CTC-VoiceService/internal/usecase/get_slots"
)

// GetSlotsUseCase интерфейс use case получения слотов
type GetSlotsUseCase interface {
	Execute(ctx context.Context, req *getSlots.Request) (*getSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
