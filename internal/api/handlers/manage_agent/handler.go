package manage_agent

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ctcplatform/CTC-VoiceService/internal/api/handlers"
	"github.com/ctcplatform/CTC-VoiceService/internal/service/agents"
)

const (
	msgCenterNotFound      = "центр не найден"
	msgAgentAlreadyExists  = "агент для центра уже создан"
	msgAgentNotProvisioned = "агент для центра не создан"
)

type Handler struct {
	service AgentsService
	logger  Logger
}

func NewHandler(service AgentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/centers/{centerId}/agent
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	info, err := h.service.CreateAgent(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, agents.ErrCenterNotFound):
			h.logger.Warn("POST /centers/{id}/agent - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)
		case errors.Is(err, agents.ErrAgentAlreadyExists):
			h.logger.Warn("POST /centers/{id}/agent - Agent already exists: center_id=%s", centerID)
			handlers.RespondError(w, http.StatusConflict, msgAgentAlreadyExists)
		default:
			h.logger.Error("POST /centers/{id}/agent - Failed to create agent: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /centers/{id}/agent - Agent created: center_id=%s, agent_id=%s",
		centerID, info.AgentID)
	handlers.RespondJSON(w, http.StatusCreated, FromAgentInfo(info))
}

// HandleUpdate PUT /api/v1/centers/{centerId}/agent
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	info, err := h.service.UpdateAgent(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, agents.ErrCenterNotFound):
			h.logger.Warn("PUT /centers/{id}/agent - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)
		case errors.Is(err, agents.ErrAgentNotProvisioned):
			h.logger.Warn("PUT /centers/{id}/agent - Agent not provisioned: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgAgentNotProvisioned)
		default:
			h.logger.Error("PUT /centers/{id}/agent - Failed to update agent: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /centers/{id}/agent - Agent updated: center_id=%s, agent_id=%s",
		centerID, info.AgentID)
	handlers.RespondJSON(w, http.StatusOK, FromAgentInfo(info))
}

// HandleDelete DELETE /api/v1/centers/{centerId}/agent
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	err := h.service.DeleteAgent(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, agents.ErrCenterNotFound):
			h.logger.Warn("DELETE /centers/{id}/agent - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)
		case errors.Is(err, agents.ErrAgentNotProvisioned):
			h.logger.Warn("DELETE /centers/{id}/agent - Agent not provisioned: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgAgentNotProvisioned)
		default:
			h.logger.Error("DELETE /centers/{id}/agent - Failed to delete agent: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /centers/{id}/agent - Agent deleted: center_id=%s", centerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// HandleGet GET /api/v1/centers/{centerId}/agent
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	centerID := mux.Vars(r)["centerId"]

	details, err := h.service.GetAgent(r.Context(), centerID)
	if err != nil {
		switch {
		case errors.Is(err, agents.ErrCenterNotFound):
			h.logger.Warn("GET /centers/{id}/agent - Center not found: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgCenterNotFound)
		case errors.Is(err, agents.ErrAgentNotProvisioned):
			h.logger.Warn("GET /centers/{id}/agent - Agent not provisioned: center_id=%s", centerID)
			handlers.RespondNotFound(w, msgAgentNotProvisioned)
		default:
			h.logger.Error("GET /centers/{id}/agent - Failed to get agent: center_id=%s, error=%v",
				centerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromAgentDetails(details))
}
