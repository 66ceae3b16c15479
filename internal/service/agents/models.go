package agents

import "encoding/json"

// AgentInfo результат создания или обновления агента
type AgentInfo struct {
	CenterID   string
	AgentID    string
	AgentName  string
	PromptSize int
}

// AgentDetails данные агента с платформы вместе с исходным телом ответа
type AgentDetails struct {
	CenterID  string
	AgentID   string
	AgentName string
	Raw       json.RawMessage
}

// CenterStatus сводка состояния центра для management-API
type CenterStatus struct {
	CenterID string
	Name     string
	Phone    string
	HasAgent bool
	AgentID  string
}
