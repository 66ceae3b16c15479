package get_slots

import (
	"fmt"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	getSlots "github.com/ctcplatform/CTC-VoiceService/internal/usecase/get_slots"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// GetSlotsRequest тело tool-вызова get_slots от голосовой платформы
type GetSlotsRequest struct {
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	VehicleType   string `json:"vehicle_type"`
	PreferredTime string `json:"preferred_time,omitempty"`
	SpecificDay   string `json:"specific_day,omitempty"`
	Period        string `json:"period,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
func (r *GetSlotsRequest) ToUseCaseRequest(centerID string) (*getSlots.Request, error) {
	req := &getSlots.Request{
		CenterID:    centerID,
		VehicleType: domain.ResolveVehicleType(r.VehicleType),
		Preference:  domain.ParseTimePreference(r.PreferredTime),
		SpecificDay: r.SpecificDay,
	}

	if r.StartDate != "" {
		parsed, err := parseDate(r.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		req.StartDate = &parsed
	}
	if r.EndDate != "" {
		parsed, err := parseDate(r.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		req.EndDate = &parsed
	}

	if r.Period != "" {
		if period, ok := domain.ParsePeriod(r.Period); ok {
			req.Period = &period
		}
	}

	return req, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, s, pariscal.Location())
}

// GetSlotsResponse тело ответа tool-вызову. Поле response - фраза
// для дословного произнесения агентом.
type GetSlotsResponse struct {
	Response          string            `json:"response"`
	Slots             []SlotPayload     `json:"slots"`
	DailyAvailability []DayPayload      `json:"daily_availability"`
	DayMessages       map[string]string `json:"day_specific_messages,omitempty"`
	Suggestion        string            `json:"suggestion,omitempty"`
}

// SlotPayload слот в ответе платформе
type SlotPayload struct {
	ID            string `json:"id"`
	FullText      string `json:"full_text"`
	BaseText      string `json:"base_text"`
	RelativeLabel string `json:"relative_label,omitempty"`
	DayName       string `json:"day_name"`
	DateOnly      string `json:"date_only"`
	TimeOnly      string `json:"time_only"`
	Duration      string `json:"duration"`
	Price         string `json:"price,omitempty"`
}

// DayPayload доступность одного календарного дня
type DayPayload struct {
	Date          string        `json:"date"`
	DayDisplay    string        `json:"day_display"`
	RelativeLabel string        `json:"relative_label,omitempty"`
	DayName       string        `json:"day_name"`
	SlotsCount    int           `json:"slots_count"`
	Slots         []SlotPayload `json:"slots"`
	IsAvailable   bool          `json:"is_available"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP-ответ
func FromUseCaseResponse(result *getSlots.Response) *GetSlotsResponse {
	resp := &GetSlotsResponse{
		Response:          result.Message,
		Slots:             make([]SlotPayload, 0, len(result.Slots)),
		DailyAvailability: make([]DayPayload, 0, len(result.DailyAvailability)),
		DayMessages:       result.DayMessages,
		Suggestion:        result.Suggestion,
	}

	for _, slot := range result.Slots {
		resp.Slots = append(resp.Slots, toSlotPayload(slot))
	}

	for _, day := range result.DailyAvailability {
		payload := DayPayload{
			Date:          day.Date,
			DayDisplay:    day.DayDisplay,
			RelativeLabel: day.RelativeLabel,
			DayName:       day.DayName,
			SlotsCount:    day.SlotsCount,
			Slots:         make([]SlotPayload, 0, len(day.Slots)),
			IsAvailable:   day.IsAvailable,
		}
		for _, slot := range day.Slots {
			payload.Slots = append(payload.Slots, toSlotPayload(slot))
		}
		resp.DailyAvailability = append(resp.DailyAvailability, payload)
	}

	return resp
}

func toSlotPayload(slot getSlots.FormattedSlot) SlotPayload {
	return SlotPayload{
		ID:            slot.ID,
		FullText:      slot.FullText,
		BaseText:      slot.BaseText,
		RelativeLabel: slot.RelativeLabel,
		DayName:       slot.DayName,
		DateOnly:      slot.DateOnly,
		TimeOnly:      slot.TimeOnly.String(),
		Duration:      slot.Duration,
		Price:         slot.Price,
	}
}
