package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

func TestSlotPeriodCutover(t *testing.T) {
	morning := Slot{StartsAt: time.Date(2025, time.September, 5, 11, 59, 0, 0, pariscal.Location())}
	afternoon := Slot{StartsAt: time.Date(2025, time.September, 5, 12, 0, 0, 0, pariscal.Location())}

	assert.True(t, morning.IsMorning())
	assert.Equal(t, PeriodMorning, morning.Period())

	assert.False(t, afternoon.IsMorning())
	assert.Equal(t, PeriodAfternoon, afternoon.Period())
}

func TestSlotDateAndTime(t *testing.T) {
	slot := Slot{StartsAt: time.Date(2025, time.September, 5, 9, 40, 0, 0, pariscal.Location())}

	assert.Equal(t, time.Date(2025, time.September, 5, 0, 0, 0, 0, pariscal.Location()), slot.Date())
	assert.Equal(t, "09:40", slot.Time().String())
	assert.Equal(t, 9, slot.Hour())
}

func TestSlotHourNormalizesTimezone(t *testing.T) {
	// 07:40 UTC летом - это 09:40 в Париже
	slot := Slot{StartsAt: time.Date(2025, time.September, 5, 7, 40, 0, 0, time.UTC)}
	assert.Equal(t, 9, slot.Hour())
	assert.True(t, slot.IsMorning())
}
