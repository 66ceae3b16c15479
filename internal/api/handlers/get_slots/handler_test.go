package get_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getSlots "github.com/ctcplatform/CTC-VoiceService/internal/usecase/get_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	gotReq *getSlots.Request
	resp   *getSlots.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func newTestRouter(useCase GetSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	handler := NewHandler(useCase, nopLogger{})
	r.HandleFunc("/webhook/elevenlabs/{centerId}/get_slots", handler.Handle).Methods(http.MethodPost)
	return r
}

func TestHandle(t *testing.T) {
	useCase := &stubUseCase{
		resp: &getSlots.Response{
			Message: "J'ai des créneaux disponibles demain matin à partir de 09:40.",
			Slots:   []getSlots.FormattedSlot{{ID: "s1", TimeOnly: "09:40"}},
		},
	}
	router := newTestRouter(useCase)

	body := `{"vehicle_type": "moto", "preferred_time": "morning", "specific_day": "lundi prochain", "period": "matin"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs/centre-42/get_slots", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Идентификатор центра берется из пути, остальное из тела
	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, "centre-42", useCase.gotReq.CenterID)
	assert.Equal(t, "moto", string(useCase.gotReq.VehicleType))
	assert.Equal(t, "morning", string(useCase.gotReq.Preference))
	assert.Equal(t, "lundi prochain", useCase.gotReq.SpecificDay)
	require.NotNil(t, useCase.gotReq.Period)

	var resp GetSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "J'ai des créneaux disponibles demain matin à partir de 09:40.", resp.Response)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "s1", resp.Slots[0].ID)
}

func TestHandleInvalidBody(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs/centre-42/get_slots", strings.NewReader("{pas du json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleInvalidDate(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	body := `{"vehicle_type": "moto", "start_date": "05/09/2025"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs/centre-42/get_slots", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleUseCaseError(t *testing.T) {
	router := newTestRouter(&stubUseCase{err: getSlots.ErrInvalidInput})

	req := httptest.NewRequest(http.MethodPost, "/webhook/elevenlabs/centre-42/get_slots", strings.NewReader(`{"vehicle_type": "moto"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
