package simplauto

import (
	"fmt"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// SlotRecord сырая запись слота из ответа провайдера
type SlotRecord struct {
	ID          string   `json:"id"`
	IsAvailable bool     `json:"is_available"`
	StartsAt    *string  `json:"starts_at"`
	Price       *float64 `json:"price"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// parseStartsAt разбирает метку времени провайдера в гражданское время
// Europe/Paris. Провайдер присылает либо ISO с таймзоной
// ("2025-09-05T09:40:00+02:00"), либо наивную метку без неё; наивные
// значения интерпретируются как парижское время.
func parseStartsAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(pariscal.Location()), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, pariscal.Location()); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: unparsable starts_at %q", ErrInvalidResponse, raw)
}
