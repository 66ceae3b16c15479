package center_status

import (
	"context"

	"github.com/ctcplatform/CTC-VoiceService/internal/service/agents"
)

// StatusService интерфейс получения сводки состояния центра
type StatusService interface {
	Status(ctx context.Context, centerID string) (*agents.CenterStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
