package simplauto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/metrics"
)

// integrationName метка интеграции в метриках исходящих запросов
const integrationName = "simplauto"

// Client клиент приватного API слотов Simplauto
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Simplauto.
// m может быть nil, тогда метрики исходящих запросов не записываются.
func NewClient(baseURL, token string, timeout time.Duration, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: metrics.NewOutboundTransport(integrationName, m),
		},
		log: log,
	}
}

// GetAvailableSlots запрашивает доступные слоты центра для заданной категории
// ТС и нормализует их в доменную модель. Записи без starts_at и недоступные
// слоты отбрасываются, порядок провайдера сохраняется.
func (c *Client) GetAvailableSlots(ctx context.Context, centerID string, codes domain.CategoryCodes) ([]domain.Slot, error) {
	params := url.Values{}
	params.Set("center_id", centerID)
	params.Set("is_available", "true")
	params.Set("vehicle_engine", strconv.Itoa(codes.VehicleEngine))
	params.Set("vehicle_type", strconv.Itoa(codes.VehicleType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var records []SlotRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	slots := make([]domain.Slot, 0, len(records))
	for _, record := range records {
		if !record.IsAvailable || record.StartsAt == nil {
			continue
		}

		startsAt, err := parseStartsAt(*record.StartsAt)
		if err != nil {
			c.log.Warn("Simplauto: skipping slot id=%s with unparsable starts_at: %v", record.ID, err)
			continue
		}

		price := 0.0
		if record.Price != nil {
			price = *record.Price
		}

		slots = append(slots, domain.Slot{
			ID:              record.ID,
			StartsAt:        startsAt,
			DurationMinutes: domain.DefaultSlotDurationMinutes,
			Price:           price,
			Available:       true,
		})
	}

	return slots, nil
}

// FetchSlots адаптер получения слотов для голосовых сценариев: резолвит тег
// типа ТС в коды провайдера, применяет фильтр по времени суток и поглощает
// любые ошибки транспорта, таймаута или декодирования, возвращая пустой
// список. Для голосового UX озвученное "нет свободных мест" лучше, чем
// оборванный звонок; цена - провайдерские сбои видны только в логах.
func (c *Client) FetchSlots(ctx context.Context, centerID string, vehicleType domain.VehicleType, preference domain.TimePreference) []domain.Slot {
	codes := vehicleType.CategoryCodes()

	slots, err := c.GetAvailableSlots(ctx, centerID, codes)
	if err != nil {
		c.log.Error("Simplauto unavailable, degrading to empty slot list: center_id=%s, error=%v", centerID, err)
		return []domain.Slot{}
	}

	return filterByPreference(slots, preference)
}

// filterByPreference оставляет слоты, попадающие в утреннее (8-12) или
// дневное (13-18) окно; границы включительные
func filterByPreference(slots []domain.Slot, preference domain.TimePreference) []domain.Slot {
	if preference == domain.PreferenceAny {
		return slots
	}

	filtered := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		hour := slot.Hour()
		switch preference {
		case domain.PreferenceMorning:
			if hour >= domain.MorningStartHour && hour <= domain.MorningEndHour {
				filtered = append(filtered, slot)
			}
		case domain.PreferenceAfternoon:
			if hour >= domain.AfternoonStartHour && hour <= domain.AfternoonEndHour {
				filtered = append(filtered, slot)
			}
		}
	}

	return filtered
}
