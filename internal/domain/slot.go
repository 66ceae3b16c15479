package domain

import (
	"time"

	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
	"github.com/ctcplatform/CTC-VoiceService/pkg/types"
)

// Slot represents a normalized bookable appointment offer from the
// scheduling provider. Constructed fresh on every acquisition call,
// never persisted, immutable after construction.
type Slot struct {
	ID              string
	StartsAt        time.Time // гражданское время Europe/Paris
	DurationMinutes int
	Price           float64
	Available       bool
}

// Date returns the calendar date of the slot (midnight, Europe/Paris)
func (s *Slot) Date() time.Time {
	return pariscal.DateOf(s.StartsAt)
}

// Time returns the slot start time as "HH:MM"
func (s *Slot) Time() types.TimeString {
	return types.NewTimeString(s.StartsAt.In(pariscal.Location()))
}

// Hour returns the local hour of the slot start
func (s *Slot) Hour() int {
	return s.StartsAt.In(pariscal.Location()).Hour()
}

// IsMorning returns true if the slot starts before the half-day cutover
func (s *Slot) IsMorning() bool {
	return s.Hour() < PeriodCutoverHour
}

// Period returns the half-day the slot falls into
func (s *Slot) Period() Period {
	if s.IsMorning() {
		return PeriodMorning
	}
	return PeriodAfternoon
}

// Period полупериод календарного дня
type Period string

const (
	PeriodMorning   Period = "matin"
	PeriodAfternoon Period = "après-midi"
)

// ParsePeriod приводит пользовательское значение периода к закрытому перечислению
func ParsePeriod(s string) (Period, bool) {
	switch s {
	case string(PeriodMorning), "morning":
		return PeriodMorning, true
	case string(PeriodAfternoon), "apres-midi", "afternoon":
		return PeriodAfternoon, true
	default:
		return "", false
	}
}
