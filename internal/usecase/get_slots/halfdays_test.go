package get_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

func buildDaysForTest(t *testing.T, today time.Time, slots []domain.Slot, end time.Time) []DayAvailability {
	t.Helper()
	formatted := make([]FormattedSlot, 0, len(slots))
	for _, slot := range slots {
		formatted = append(formatted, formatSlot(slot, today))
	}
	return buildDailyAvailability(formatted, today, today, end)
}

func TestBuildHalfDays(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	days := buildDaysForTest(t, today, []domain.Slot{
		makeSlot("s1", 2025, time.September, 5, 14, 0),
		makeSlot("s2", 2025, time.September, 5, 9, 40),
		makeSlot("s3", 2025, time.September, 6, 10, 0),
	}, parisDate(2025, time.September, 6))

	halfDays := buildHalfDays(days)

	require.Len(t, halfDays, 3)

	// Утро всегда раньше второй половины того же дня
	assert.Equal(t, domain.PeriodMorning, halfDays[0].Period)
	assert.Equal(t, "demain", halfDays[0].RelativeLabel)
	assert.Equal(t, domain.PeriodAfternoon, halfDays[1].Period)
	assert.Equal(t, "demain", halfDays[1].RelativeLabel)
	assert.Equal(t, domain.PeriodMorning, halfDays[2].Period)
	assert.Equal(t, "après-demain", halfDays[2].RelativeLabel)
}

func TestBuildHalfDaysSkipsEmptyDays(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	days := buildDaysForTest(t, today, nil, today.AddDate(0, 0, 3))

	assert.Empty(t, buildHalfDays(days))
}

func TestFormatHalfDayWithTime(t *testing.T) {
	tests := []struct {
		name    string
		halfDay HalfDay
		want    string
	}{
		{
			"tomorrow morning",
			HalfDay{RelativeLabel: "demain", Period: domain.PeriodMorning},
			"demain matin à partir de 09:40",
		},
		{
			"today morning",
			HalfDay{RelativeLabel: "aujourd'hui", Period: domain.PeriodMorning},
			"ce matin à partir de 09:40",
		},
		{
			"today afternoon",
			HalfDay{RelativeLabel: "aujourd'hui", Period: domain.PeriodAfternoon},
			"cet après-midi à partir de 09:40",
		},
		{
			"day after tomorrow",
			HalfDay{RelativeLabel: "après-demain", Period: domain.PeriodAfternoon},
			"après-demain après-midi à partir de 09:40",
		},
		{
			"next week",
			HalfDay{RelativeLabel: "lundi prochain", Period: domain.PeriodMorning},
			"lundi matin prochain à partir de 09:40",
		},
		{
			"this week",
			HalfDay{RelativeLabel: "ce jeudi", Period: domain.PeriodMorning},
			"ce jeudi matin à partir de 09:40",
		},
		{
			"no label",
			HalfDay{DayDisplay: "samedi 20 septembre", Period: domain.PeriodMorning},
			"samedi 20 septembre matin à partir de 09:40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatHalfDayWithTime(tt.halfDay, "09:40"))
		})
	}
}

func TestEarliestTime(t *testing.T) {
	assert.Equal(t, "09:40", earliestTime([]FormattedSlot{{TimeOnly: "09:40"}}))

	// Неотсортированный провайдерский порядок: опорное время - минимальное
	assert.Equal(t, "08:20", earliestTime([]FormattedSlot{
		{TimeOnly: "10:00"}, {TimeOnly: "08:20"}, {TimeOnly: "09:40"},
	}))
}

func TestSynthesizeOffer(t *testing.T) {
	today := parisDate(2025, time.September, 4)

	t.Run("two half days", func(t *testing.T) {
		days := buildDaysForTest(t, today, []domain.Slot{
			makeSlot("s1", 2025, time.September, 5, 9, 40),
			makeSlot("s2", 2025, time.September, 5, 14, 0),
		}, parisDate(2025, time.September, 5))

		message := synthesizeOffer(buildHalfDays(days), true)
		assert.Equal(t, "J'ai des créneaux disponibles demain matin à partir de 09:40, ou demain après-midi à partir de 14:00.", message)
	})

	t.Run("single half day", func(t *testing.T) {
		days := buildDaysForTest(t, today, []domain.Slot{
			makeSlot("s1", 2025, time.September, 5, 9, 40),
		}, parisDate(2025, time.September, 5))

		message := synthesizeOffer(buildHalfDays(days), true)
		assert.Equal(t, "J'ai des créneaux disponibles demain matin à partir de 09:40.", message)
	})

	t.Run("no slots at all", func(t *testing.T) {
		assert.Equal(t, msgNoSlotsAtAll, synthesizeOffer(nil, false))
	})

	t.Run("slots filtered out", func(t *testing.T) {
		assert.Equal(t, msgAllSlotsFull, synthesizeOffer(nil, true))
	})
}

func TestBuildDayMessages(t *testing.T) {
	today := parisDate(2025, time.September, 4)
	days := buildDaysForTest(t, today, []domain.Slot{
		makeSlot("s1", 2025, time.September, 5, 9, 40),
		makeSlot("s2", 2025, time.September, 5, 14, 0),
		makeSlot("s3", 2025, time.September, 20, 10, 0),
	}, parisDate(2025, time.September, 20))

	// Окно усечено до недели: 20 сентября в сообщения не попадает
	messages := buildDayMessages(days)

	require.Contains(t, messages, "demain")
	assert.Equal(t, "Demain, j'ai de la place à 09:40, 14:00.", messages["demain"])
	assert.Len(t, messages, 1)
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Demain", capitalize("demain"))
	assert.Equal(t, "Après-demain", capitalize("après-demain"))
	assert.Empty(t, capitalize(""))
}
