package manage_agent

import (
	"context"

	"github.com/ctcplatform/CTC-VoiceService/internal/service/agents"
)

// AgentsService интерфейс сервиса управления агентами центров
type AgentsService interface {
	CreateAgent(ctx context.Context, centerID string) (*agents.AgentInfo, error)
	UpdateAgent(ctx context.Context, centerID string) (*agents.AgentInfo, error)
	DeleteAgent(ctx context.Context, centerID string) error
	GetAgent(ctx context.Context, centerID string) (*agents.AgentDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
