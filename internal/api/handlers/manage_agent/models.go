package manage_agent

import (
	"encoding/json"

	"github.com/ctcplatform/CTC-VoiceService/internal/service/agents"
)

// AgentResponse результат создания или обновления агента
type AgentResponse struct {
	CenterID   string `json:"center_id"`
	AgentID    string `json:"agent_id"`
	AgentName  string `json:"agent_name,omitempty"`
	PromptSize int    `json:"prompt_size"`
}

// FromAgentInfo конвертирует результат сервиса в HTTP-ответ
func FromAgentInfo(info *agents.AgentInfo) *AgentResponse {
	return &AgentResponse{
		CenterID:   info.CenterID,
		AgentID:    info.AgentID,
		AgentName:  info.AgentName,
		PromptSize: info.PromptSize,
	}
}

// AgentDetailsResponse данные агента; platform_data - исходный ответ
// платформы без повторного декодирования
type AgentDetailsResponse struct {
	CenterID     string          `json:"center_id"`
	AgentID      string          `json:"agent_id"`
	AgentName    string          `json:"agent_name,omitempty"`
	PlatformData json.RawMessage `json:"platform_data,omitempty"`
}

// FromAgentDetails конвертирует данные агента в HTTP-ответ
func FromAgentDetails(details *agents.AgentDetails) *AgentDetailsResponse {
	return &AgentDetailsResponse{
		CenterID:     details.CenterID,
		AgentID:      details.AgentID,
		AgentName:    details.AgentName,
		PlatformData: details.Raw,
	}
}
