package elevenlabs

import "encoding/json"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Tool описание инструмента агента с webhook-обратным вызовом
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Webhook     ToolWebhook `json:"webhook"`
	Parameters  Schema      `json:"parameters"`
}

// ToolWebhook адрес и метод обратного вызова инструмента
type ToolWebhook struct {
	URL    string `json:"url"`
	Method string `json:"method"`
}

// Schema JSON-схема параметров инструмента
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property свойство JSON-схемы
type Property struct {
	Type        string              `json:"type"`
	Format      string              `json:"format,omitempty"`
	Description string              `json:"description,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
}

// TurnDetection настройки детектора конца реплики
type TurnDetection struct {
	Type            string  `json:"type"`
	Threshold       float64 `json:"threshold"`
	PrefixPaddingMs int     `json:"prefix_padding_ms"`
	SuffixPaddingMs int     `json:"suffix_padding_ms"`
}

// CreateAgentRequest тело запроса создания агента
type CreateAgentRequest struct {
	Name               string              `json:"name"`
	Prompt             string              `json:"prompt"`
	VoiceID            string              `json:"voice_id"`
	Language           string              `json:"language"`
	Tools              []Tool              `json:"tools"`
	ConversationConfig *ConversationConfig `json:"conversation_config,omitempty"`
}

// ConversationConfig конфигурация диалога при создании агента
type ConversationConfig struct {
	TurnDetection TurnDetection `json:"turn_detection"`
}

// UpdateAgentRequest тело запроса обновления агента: платформа принимает
// новый промпт только внутри conversation_config.agent.prompt
type UpdateAgentRequest struct {
	Name               string                   `json:"name"`
	ConversationConfig UpdateConversationConfig `json:"conversation_config"`
}

type UpdateConversationConfig struct {
	Agent UpdateAgentSection `json:"agent"`
}

type UpdateAgentSection struct {
	Prompt UpdatePrompt `json:"prompt"`
}

type UpdatePrompt struct {
	Prompt      string  `json:"prompt"`
	LLM         string  `json:"llm"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// Agent минимальное представление агента в ответах платформы
type Agent struct {
	AgentID string `json:"agent_id"`
	Name    string `json:"name"`
}

// AgentDetails полный ответ платформы на GET агента; состав полей платформа
// меняет без предупреждения, поэтому тело сохраняется как есть
type AgentDetails struct {
	Agent
	Raw json.RawMessage `json:"-"`
}
