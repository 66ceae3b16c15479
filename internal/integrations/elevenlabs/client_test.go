package elevenlabs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "api-key", 5*time.Second, nil, nopLogger{})
}

func TestCreateAgent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/convai/agents", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("xi-api-key"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"agent_id": "agent-123", "name": "CTC - Test"}`))
	})

	agent, err := client.CreateAgent(context.Background(), &CreateAgentRequest{Name: "CTC - Test", Prompt: "p"})

	require.NoError(t, err)
	assert.Equal(t, "agent-123", agent.AgentID)
}

func TestCreateAgentUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.CreateAgent(context.Background(), &CreateAgentRequest{Name: "n"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateAgentNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/convai/agents/agent-404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})

	err := client.UpdateAgent(context.Background(), "agent-404", &UpdateAgentRequest{})
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestDeleteAgent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.DeleteAgent(context.Background(), "agent-123"))
}

func TestGetAgentKeepsRawBody(t *testing.T) {
	raw := `{"agent_id": "agent-123", "name": "CTC - Test", "extra_platform_field": 42}`
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(raw))
	})

	details, err := client.GetAgent(context.Background(), "agent-123")

	require.NoError(t, err)
	assert.Equal(t, "agent-123", details.AgentID)
	assert.JSONEq(t, raw, string(details.Raw))
}

func TestBuildCenterTools(t *testing.T) {
	tools := BuildCenterTools("centre-42", "https://hooks.example.com")

	require.Len(t, tools, 2)

	getSlots := tools[0]
	assert.Equal(t, "get_slots", getSlots.Name)
	assert.Equal(t, "https://hooks.example.com/webhook/elevenlabs/centre-42/get_slots", getSlots.Webhook.URL)
	assert.Equal(t, []string{"vehicle_type"}, getSlots.Parameters.Required)
	assert.Contains(t, getSlots.Parameters.Properties, "specific_day")
	assert.Contains(t, getSlots.Parameters.Properties, "period")

	book := tools[1]
	assert.Equal(t, "book", book.Name)
	assert.Equal(t, "https://hooks.example.com/webhook/elevenlabs/centre-42/book", book.Webhook.URL)
	assert.Equal(t, []string{"slot_id", "client_info"}, book.Parameters.Required)

	clientInfo := book.Parameters.Properties["client_info"]
	assert.ElementsMatch(t,
		[]string{"first_name", "last_name", "phone", "vehicle_brand", "license_plate"},
		clientInfo.Required)
}
