package pariscal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, Location())
}

func TestDateOf(t *testing.T) {
	moment := time.Date(2025, time.September, 4, 15, 42, 10, 0, Location())
	assert.Equal(t, date(2025, time.September, 4), DateOf(moment))
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2025, time.September, 4), date(2025, time.September, 4), 0},
		{"next day", date(2025, time.September, 4), date(2025, time.September, 5), 1},
		{"across week", date(2025, time.September, 4), date(2025, time.September, 15), 11},
		{"backwards", date(2025, time.September, 5), date(2025, time.September, 4), -1},
		// 29 марта 2026 - переход на летнее время, сутки из 23 часов
		{"across spring forward", date(2026, time.March, 29), date(2026, time.March, 30), 1},
		{"week across spring forward", date(2026, time.March, 28), date(2026, time.April, 4), 7},
		// 25 октября 2026 - переход на зимнее время, сутки из 25 часов
		{"across fall back", date(2026, time.October, 25), date(2026, time.October, 26), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.from, tt.to))
		})
	}
}

func TestNextMonday(t *testing.T) {
	tests := []struct {
		name  string
		today time.Time
		want  time.Time
	}{
		// 2025-09-01 - понедельник
		{"from monday", date(2025, time.September, 1), date(2025, time.September, 8)},
		{"from thursday", date(2025, time.September, 4), date(2025, time.September, 8)},
		{"from sunday", date(2025, time.September, 7), date(2025, time.September, 8)},
		{"from saturday", date(2025, time.September, 6), date(2025, time.September, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextMonday(tt.today))
		})
	}
}

func TestEndOfWeek(t *testing.T) {
	assert.Equal(t, date(2025, time.September, 7), EndOfWeek(date(2025, time.September, 4)))
	assert.Equal(t, date(2025, time.September, 7), EndOfWeek(date(2025, time.September, 7)))
	assert.Equal(t, date(2025, time.September, 14), EndOfWeek(date(2025, time.September, 8)))
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2025, time.September)
	assert.Equal(t, date(2025, time.September, 1), first)
	assert.Equal(t, date(2025, time.September, 30), last)

	first, last = MonthRange(2025, time.February)
	assert.Equal(t, date(2025, time.February, 1), first)
	assert.Equal(t, date(2025, time.February, 28), last)
}

func TestRelativePhraseDate(t *testing.T) {
	// Четверг 4 сентября 2025
	now := time.Date(2025, time.September, 4, 15, 0, 0, 0, Location())

	tests := []struct {
		phrase string
		want   time.Time
	}{
		{"avant-hier", date(2025, time.September, 2)},
		{"hier", date(2025, time.September, 3)},
		{"aujourd'hui", date(2025, time.September, 4)},
		{"demain", date(2025, time.September, 5)},
		{"après-demain", date(2025, time.September, 6)},
		{"la semaine prochaine", date(2025, time.September, 8)},
		{"dans 2 semaines", date(2025, time.September, 15)},
		{"dans 3 semaines", date(2025, time.September, 22)},
		{"le mois prochain", date(2025, time.October, 4)},
		{"dans 2 mois", date(2025, time.November, 4)},
		// Нераспознанное выражение деградирует до сегодня
		{"à la saint-glinglin", date(2025, time.September, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativePhraseDate(tt.phrase, now))
		})
	}
}

func TestRelativePhraseRange(t *testing.T) {
	now := time.Date(2025, time.September, 4, 15, 0, 0, 0, Location())

	t.Run("next week", func(t *testing.T) {
		start, end, ok := RelativePhraseRange("la semaine prochaine", now)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.September, 8), start)
		assert.Equal(t, date(2025, time.September, 14), end)
	})

	t.Run("in three weeks", func(t *testing.T) {
		start, end, ok := RelativePhraseRange("dans 3 semaines", now)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.September, 22), start)
		assert.Equal(t, date(2025, time.September, 28), end)
	})

	t.Run("next month", func(t *testing.T) {
		start, end, ok := RelativePhraseRange("le mois prochain", now)
		require.True(t, ok)
		assert.Equal(t, date(2025, time.October, 1), start)
		assert.Equal(t, date(2025, time.October, 31), end)
	})

	t.Run("not a range", func(t *testing.T) {
		_, _, ok := RelativePhraseRange("demain", now)
		assert.False(t, ok)
	})
}
