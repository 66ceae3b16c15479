package agents

import (
	"context"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/internal/integrations/elevenlabs"
)

// CenterStore интерфейс хранилища центров
type CenterStore interface {
	Get(ctx context.Context, id string) (*domain.Center, error)
	UpdateAgentID(ctx context.Context, id, agentID string) error
}

// VoicePlatform интерфейс management-API голосовой платформы
type VoicePlatform interface {
	CreateAgent(ctx context.Context, req *elevenlabs.CreateAgentRequest) (*elevenlabs.Agent, error)
	UpdateAgent(ctx context.Context, agentID string, req *elevenlabs.UpdateAgentRequest) error
	DeleteAgent(ctx context.Context, agentID string) error
	GetAgent(ctx context.Context, agentID string) (*elevenlabs.AgentDetails, error)
}

// PromptGenerator интерфейс генератора промптов агентов
type PromptGenerator interface {
	Generate(center *domain.Center) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
