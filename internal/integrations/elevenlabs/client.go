package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/pkg/metrics"
)

// integrationName метка интеграции в метриках исходящих запросов
const integrationName = "elevenlabs"

// Client клиент management-API голосовой платформы ElevenLabs
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ElevenLabs.
// m может быть nil, тогда метрики исходящих запросов не записываются.
func NewClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: metrics.NewOutboundTransport(integrationName, m),
		},
		log: log,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}

	return resp, nil
}

// CreateAgent создает агента на платформе и возвращает его идентификатор
func (c *Client) CreateAgent(ctx context.Context, req *CreateAgentRequest) (*Agent, error) {
	c.log.Info("ElevenLabs: creating agent name=%q, prompt_size=%d", req.Name, len(req.Prompt))

	resp, err := c.do(ctx, http.MethodPost, "/v1/convai/agents", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: create agent: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var agent Agent
	if err := json.NewDecoder(resp.Body).Decode(&agent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode create response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("ElevenLabs: agent created agent_id=%s", agent.AgentID)
	return &agent, nil
}

// UpdateAgent обновляет имя и промпт существующего агента
func (c *Client) UpdateAgent(ctx context.Context, agentID string, req *UpdateAgentRequest) error {
	c.log.Info("ElevenLabs: updating agent agent_id=%s, prompt_size=%d",
		agentID, len(req.ConversationConfig.Agent.Prompt.Prompt))

	resp, err := c.do(ctx, http.MethodPatch, "/v1/convai/agents/"+agentID, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrAgentNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: update agent: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// DeleteAgent удаляет агента с платформы
func (c *Client) DeleteAgent(ctx context.Context, agentID string) error {
	c.log.Info("ElevenLabs: deleting agent agent_id=%s", agentID)

	resp, err := c.do(ctx, http.MethodDelete, "/v1/convai/agents/"+agentID, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrAgentNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: delete agent: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}

// GetAgent возвращает данные агента; тело ответа сохраняется целиком
func (c *Client) GetAgent(ctx context.Context, agentID string) (*AgentDetails, error) {
	resp, err := c.do(ctx, http.MethodGet, "/v1/convai/agents/"+agentID, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAgentNotFound
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: get agent: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read get response: %v", ErrInvalidResponse, err)
	}

	details := &AgentDetails{Raw: body}
	if err := json.Unmarshal(body, &details.Agent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode get response: %v", ErrInvalidResponse, err)
	}

	return details, nil
}
