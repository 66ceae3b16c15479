package agents

import (
	"context"
	"errors"
	"fmt"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	storage "github.com/ctcplatform/CTC-VoiceService/internal/infra/storage/center"
	"github.com/ctcplatform/CTC-VoiceService/internal/integrations/elevenlabs"
)

const (
	agentLanguage = "fr"

	// Параметры LLM при обновлении промпта: платформа требует их
	// повторной передачи вместе с новым текстом
	agentLLM         = "gpt-4o-mini"
	agentTemperature = 0.3
	agentMaxTokens   = 2048

	// Детектор конца реплики: серверный VAD с небольшим запасом тишины
	// после слов клиента, телефонная связь шумнее студийной
	turnDetectionType      = "server_vad"
	turnDetectionThreshold = 0.5
	turnDetectionPrefixMs  = 300
	turnDetectionSuffixMs  = 800
)

// Service управляет жизненным циклом голосовых агентов центров:
// генерация промпта, создание и обновление на платформе,
// привязка agent_id к центру
type Service struct {
	centers        CenterStore
	platform       VoicePlatform
	prompts        PromptGenerator
	voiceID        string
	webhookBaseURL string
	log            Logger
}

// NewService создает новый сервис управления агентами
func NewService(
	centers CenterStore,
	platform VoicePlatform,
	prompts PromptGenerator,
	voiceID string,
	webhookBaseURL string,
	log Logger,
) *Service {
	return &Service{
		centers:        centers,
		platform:       platform,
		prompts:        prompts,
		voiceID:        voiceID,
		webhookBaseURL: webhookBaseURL,
		log:            log,
	}
}

// CreateAgent создает агента для центра и сохраняет его идентификатор.
// Для центра с уже привязанным агентом возвращает ErrAgentAlreadyExists.
func (s *Service) CreateAgent(ctx context.Context, centerID string) (*AgentInfo, error) {
	// 1. Загружаем центр
	center, err := s.getCenter(ctx, centerID)
	if err != nil {
		return nil, err
	}

	if center.HasAgent() {
		return nil, fmt.Errorf("%w: center_id=%s, agent_id=%s", ErrAgentAlreadyExists, centerID, center.AgentID)
	}

	// 2. Собираем промпт и инструменты
	promptText := s.prompts.Generate(center)
	tools := elevenlabs.BuildCenterTools(centerID, s.webhookBaseURL)

	// 3. Создаем агента на платформе
	agent, err := s.platform.CreateAgent(ctx, &elevenlabs.CreateAgentRequest{
		Name:     fmt.Sprintf("CTC - %s", center.Name),
		Prompt:   promptText,
		VoiceID:  s.voiceID,
		Language: agentLanguage,
		Tools:    tools,
		ConversationConfig: &elevenlabs.ConversationConfig{
			TurnDetection: elevenlabs.TurnDetection{
				Type:            turnDetectionType,
				Threshold:       turnDetectionThreshold,
				PrefixPaddingMs: turnDetectionPrefixMs,
				SuffixPaddingMs: turnDetectionSuffixMs,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create agent: %v", ErrInternal, err)
	}

	// 4. Привязываем agent_id к центру
	if err := s.centers.UpdateAgentID(ctx, centerID, agent.AgentID); err != nil {
		s.log.Error("Agents: created agent %s but failed to bind to center %s: %v",
			agent.AgentID, centerID, err)
		return nil, fmt.Errorf("%w: failed to bind agent to center: %v", ErrInternal, err)
	}

	s.log.Info("Agents: agent created center_id=%s, agent_id=%s, prompt_size=%d",
		centerID, agent.AgentID, len(promptText))

	return &AgentInfo{
		CenterID:   centerID,
		AgentID:    agent.AgentID,
		AgentName:  agent.Name,
		PromptSize: len(promptText),
	}, nil
}

// UpdateAgent перегенерирует промпт центра и обновляет агента на платформе
func (s *Service) UpdateAgent(ctx context.Context, centerID string) (*AgentInfo, error) {
	center, err := s.getCenter(ctx, centerID)
	if err != nil {
		return nil, err
	}

	if !center.HasAgent() {
		return nil, fmt.Errorf("%w: center_id=%s", ErrAgentNotProvisioned, centerID)
	}

	promptText := s.prompts.Generate(center)

	err = s.platform.UpdateAgent(ctx, center.AgentID, &elevenlabs.UpdateAgentRequest{
		Name: fmt.Sprintf("CTC - %s", center.Name),
		ConversationConfig: elevenlabs.UpdateConversationConfig{
			Agent: elevenlabs.UpdateAgentSection{
				Prompt: elevenlabs.UpdatePrompt{
					Prompt:      promptText,
					LLM:         agentLLM,
					Temperature: agentTemperature,
					MaxTokens:   agentMaxTokens,
				},
			},
		},
	})
	switch {
	case errors.Is(err, elevenlabs.ErrAgentNotFound):
		// Агент удален на стороне платформы: сбрасываем привязку
		s.log.Warn("Agents: agent %s missing on platform, unbinding from center %s",
			center.AgentID, centerID)
		if unbindErr := s.centers.UpdateAgentID(ctx, centerID, ""); unbindErr != nil {
			s.log.Error("Agents: failed to unbind stale agent from center %s: %v", centerID, unbindErr)
		}
		return nil, fmt.Errorf("%w: center_id=%s", ErrAgentNotProvisioned, centerID)
	case err != nil:
		return nil, fmt.Errorf("%w: failed to update agent: %v", ErrInternal, err)
	}

	s.log.Info("Agents: agent updated center_id=%s, agent_id=%s, prompt_size=%d",
		centerID, center.AgentID, len(promptText))

	return &AgentInfo{
		CenterID:   centerID,
		AgentID:    center.AgentID,
		AgentName:  center.Name,
		PromptSize: len(promptText),
	}, nil
}

// DeleteAgent удаляет агента центра с платформы и сбрасывает привязку
func (s *Service) DeleteAgent(ctx context.Context, centerID string) error {
	center, err := s.getCenter(ctx, centerID)
	if err != nil {
		return err
	}

	if !center.HasAgent() {
		return fmt.Errorf("%w: center_id=%s", ErrAgentNotProvisioned, centerID)
	}

	err = s.platform.DeleteAgent(ctx, center.AgentID)
	if err != nil && !errors.Is(err, elevenlabs.ErrAgentNotFound) {
		return fmt.Errorf("%w: failed to delete agent: %v", ErrInternal, err)
	}

	if err := s.centers.UpdateAgentID(ctx, centerID, ""); err != nil {
		return fmt.Errorf("%w: failed to unbind agent from center: %v", ErrInternal, err)
	}

	s.log.Info("Agents: agent deleted center_id=%s, agent_id=%s", centerID, center.AgentID)
	return nil
}

// GetAgent возвращает данные агента центра с платформы
func (s *Service) GetAgent(ctx context.Context, centerID string) (*AgentDetails, error) {
	center, err := s.getCenter(ctx, centerID)
	if err != nil {
		return nil, err
	}

	if !center.HasAgent() {
		return nil, fmt.Errorf("%w: center_id=%s", ErrAgentNotProvisioned, centerID)
	}

	details, err := s.platform.GetAgent(ctx, center.AgentID)
	switch {
	case errors.Is(err, elevenlabs.ErrAgentNotFound):
		return nil, fmt.Errorf("%w: center_id=%s", ErrAgentNotProvisioned, centerID)
	case err != nil:
		return nil, fmt.Errorf("%w: failed to get agent: %v", ErrInternal, err)
	}

	return &AgentDetails{
		CenterID:  centerID,
		AgentID:   details.AgentID,
		AgentName: details.Name,
		Raw:       details.Raw,
	}, nil
}

// Status возвращает сводку состояния центра и его агента
func (s *Service) Status(ctx context.Context, centerID string) (*CenterStatus, error) {
	center, err := s.getCenter(ctx, centerID)
	if err != nil {
		return nil, err
	}

	return &CenterStatus{
		CenterID: center.ID,
		Name:     center.Name,
		Phone:    center.Phone,
		HasAgent: center.HasAgent(),
		AgentID:  center.AgentID,
	}, nil
}

func (s *Service) getCenter(ctx context.Context, centerID string) (*domain.Center, error) {
	center, err := s.centers.Get(ctx, centerID)
	switch {
	case errors.Is(err, storage.ErrCenterNotFound):
		return nil, fmt.Errorf("%w: center_id=%s", ErrCenterNotFound, centerID)
	case err != nil:
		return nil, fmt.Errorf("%w: failed to load center: %v", ErrInternal, err)
	}
	return center, nil
}
