package center_status

import "github.com/ctcplatform/CTC-VoiceService/internal/service/agents"

// StatusResponse сводка состояния центра
type StatusResponse struct {
	CenterID string `json:"center_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	HasAgent bool   `json:"has_agent"`
	AgentID  string `json:"agent_id,omitempty"`
}

// FromCenterStatus конвертирует результат сервиса в HTTP-ответ
func FromCenterStatus(status *agents.CenterStatus) *StatusResponse {
	return &StatusResponse{
		CenterID: status.CenterID,
		Name:     status.Name,
		Phone:    status.Phone,
		HasAgent: status.HasAgent,
		AgentID:  status.AgentID,
	}
}
