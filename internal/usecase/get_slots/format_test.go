package get_slots

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
	"github.com/ctcplatform/CTC-VoiceService/pkg/types"
)

func makeSlot(id string, year int, month time.Month, day, hour, minute int) domain.Slot {
	return domain.Slot{
		ID:              id,
		StartsAt:        time.Date(year, month, day, hour, minute, 0, 0, pariscal.Location()),
		DurationMinutes: 50,
		Price:           78,
		Available:       true,
	}
}

func TestFormatSlotTomorrow(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	slot := makeSlot("slot_demo_20250905_0940", 2025, time.September, 5, 9, 40)

	formatted := formatSlot(slot, today)

	assert.Equal(t, "demain (vendredi 5 septembre) à 09:40", formatted.FullText)
	assert.Equal(t, "vendredi 5 septembre 2025 à 09:40", formatted.BaseText)
	assert.Equal(t, "demain", formatted.RelativeLabel)
	assert.Equal(t, "vendredi", formatted.DayName)
	assert.Equal(t, "vendredi 5 septembre", formatted.DateOnly)
	assert.Equal(t, types.TimeString("09:40"), formatted.TimeOnly)
	assert.Equal(t, "50 minutes", formatted.Duration)
	assert.Equal(t, "78€", formatted.Price)
}

func TestFormatSlotNextWeek(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	slot := makeSlot("slot_demo_20250908_1400", 2025, time.September, 8, 14, 0)

	formatted := formatSlot(slot, today)

	// Метка с днем недели не повторяет название дня в скобках
	assert.Equal(t, "lundi prochain (8 septembre) à 14:00", formatted.FullText)
	assert.Equal(t, "lundi prochain", formatted.RelativeLabel)
}

func TestFormatSlotNoLabel(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	slot := makeSlot("slot_demo_20250920_1000", 2025, time.September, 20, 10, 0)

	formatted := formatSlot(slot, today)

	assert.Empty(t, formatted.RelativeLabel)
	assert.Equal(t, formatted.BaseText, formatted.FullText)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "78€", formatPrice(78))
	assert.Equal(t, "78.5€", formatPrice(78.5))
	assert.Equal(t, "0€", formatPrice(0))
}

func TestSpokenTimes(t *testing.T) {
	slots := func(n int) []FormattedSlot {
		result := make([]FormattedSlot, 0, n)
		for i := 0; i < n; i++ {
			result = append(result, FormattedSlot{TimeOnly: types.TimeString(fmt.Sprintf("%02d:00", 9+i))})
		}
		return result
	}

	assert.Equal(t, "09:00, 10:00", spokenTimes(slots(2)))
	assert.Equal(t, "09:00, 10:00, 11:00, 12:00, 13:00", spokenTimes(slots(5)))
	// Свыше пяти: первые четыре и "etc."
	assert.Equal(t, "09:00, 10:00, 11:00, 12:00, etc.", spokenTimes(slots(6)))

	// Порядок провайдера не гарантирован, озвучивание всегда по возрастанию
	unsorted := []FormattedSlot{{TimeOnly: "14:00"}, {TimeOnly: "09:40"}, {TimeOnly: "11:20"}}
	assert.Equal(t, "09:40, 11:20, 14:00", spokenTimes(unsorted))
	assert.Empty(t, spokenTimes(nil))
}

func TestBuildDailyAvailability(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	formatted := []FormattedSlot{
		formatSlot(makeSlot("s1", 2025, time.September, 5, 9, 40), today),
		formatSlot(makeSlot("s2", 2025, time.September, 5, 14, 0), today),
		formatSlot(makeSlot("s3", 2025, time.September, 7, 10, 0), today),
	}

	days := buildDailyAvailability(formatted, today, today, parisDate(2025, time.September, 7))

	require.Len(t, days, 4)

	assert.Equal(t, "2025-09-04", days[0].Date)
	assert.False(t, days[0].IsAvailable)

	assert.Equal(t, "2025-09-05", days[1].Date)
	assert.True(t, days[1].IsAvailable)
	assert.Equal(t, 2, days[1].SlotsCount)
	assert.Equal(t, "demain (vendredi 5 septembre)", days[1].DayDisplay)

	assert.False(t, days[2].IsAvailable)

	assert.Equal(t, "2025-09-07", days[3].Date)
	assert.Equal(t, "ce dimanche", days[3].RelativeLabel)
}

func TestBuildDailyAvailabilityCapped(t *testing.T) {
	today := parisDate(2025, time.September, 4)

	// Окно в две недели усечется до MaxDailyBuckets дней
	days := buildDailyAvailability(nil, today, today, today.AddDate(0, 0, 13))

	assert.Len(t, days, domain.MaxDailyBuckets)
}
