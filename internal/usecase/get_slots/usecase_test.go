package get_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
	"github.com/ctcplatform/CTC-VoiceService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubFetcher struct {
	slots []domain.Slot
}

func (f *stubFetcher) FetchSlots(context.Context, string, domain.VehicleType, domain.TimePreference) []domain.Slot {
	return f.slots
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

func newTestUseCase(slots []domain.Slot, respectClientRange bool, now time.Time) *UseCase {
	uc := NewUseCase(&stubFetcher{slots: slots}, respectClientRange, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestExecuteOffersTwoHalfDays(t *testing.T) {
	// Четверг 4 сентября 2025, 10:00
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())
	uc := newTestUseCase([]domain.Slot{
		makeSlot("slot_c1_20250905_0940", 2025, time.September, 5, 9, 40),
		makeSlot("slot_c1_20250905_1400", 2025, time.September, 5, 14, 0),
	}, false, now)

	resp, err := uc.Execute(context.Background(), &Request{CenterID: "c1", VehicleType: domain.VehicleTypeCar})

	require.NoError(t, err)
	assert.Equal(t, "J'ai des créneaux disponibles demain matin à partir de 09:40, ou demain après-midi à partir de 14:00.", resp.Message)
	assert.Empty(t, resp.Suggestion)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "demain (vendredi 5 septembre) à 09:40", resp.Slots[0].FullText)
	assert.Equal(t, "Demain, j'ai de la place à 09:40, 14:00.", resp.DayMessages["demain"])
}

func TestExecuteEmptySnapshot(t *testing.T) {
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())
	uc := newTestUseCase(nil, false, now)

	resp, err := uc.Execute(context.Background(), &Request{CenterID: "c1", VehicleType: domain.VehicleTypeCar})

	require.NoError(t, err)
	assert.Equal(t, msgNoSlotsAtAll, resp.Message)
	assert.Equal(t, msgSuggestion, resp.Suggestion)
	assert.Empty(t, resp.Slots)

	// Пустой снимок дает окно по умолчанию, усеченное до недели дней
	require.Len(t, resp.DailyAvailability, domain.MaxDailyBuckets)
	for _, day := range resp.DailyAvailability {
		assert.False(t, day.IsAvailable)
	}
}

func TestExecuteValidation(t *testing.T) {
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())

	t.Run("missing center", func(t *testing.T) {
		uc := newTestUseCase(nil, false, now)
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("end before start", func(t *testing.T) {
		uc := newTestUseCase(nil, false, now)
		_, err := uc.Execute(context.Background(), &Request{
			CenterID:  "c1",
			StartDate: ptr.Ptr(parisDate(2025, time.September, 10)),
			EndDate:   ptr.Ptr(parisDate(2025, time.September, 5)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecuteIgnoresClientRangeByDefault(t *testing.T) {
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())
	uc := newTestUseCase([]domain.Slot{
		makeSlot("s1", 2025, time.September, 5, 9, 40),
	}, false, now)

	// Диапазон мимо единственного слота; по умолчанию он игнорируется
	resp, err := uc.Execute(context.Background(), &Request{
		CenterID:  "c1",
		StartDate: ptr.Ptr(parisDate(2025, time.September, 10)),
		EndDate:   ptr.Ptr(parisDate(2025, time.September, 12)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
}

func TestExecuteRespectsClientRangeWhenEnabled(t *testing.T) {
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())
	uc := newTestUseCase([]domain.Slot{
		makeSlot("s1", 2025, time.September, 5, 9, 40),
		makeSlot("s2", 2025, time.September, 11, 10, 0),
	}, true, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CenterID:  "c1",
		StartDate: ptr.Ptr(parisDate(2025, time.September, 10)),
		EndDate:   ptr.Ptr(parisDate(2025, time.September, 12)),
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "s2", resp.Slots[0].ID)
}

func TestExecuteSpecificDayOverridesOffer(t *testing.T) {
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())
	uc := newTestUseCase([]domain.Slot{
		makeSlot("s1", 2025, time.September, 5, 9, 40),
		makeSlot("s2", 2025, time.September, 5, 14, 0),
	}, false, now)

	resp, err := uc.Execute(context.Background(), &Request{
		CenterID:    "c1",
		SpecificDay: "vendredi",
	})

	require.NoError(t, err)
	assert.Equal(t, "Pour vendredi 5 septembre, plutôt le matin ou l'après-midi ?", resp.Message)
}

func TestExecuteIsRepeatable(t *testing.T) {
	now := time.Date(2025, time.September, 4, 10, 0, 0, 0, pariscal.Location())
	uc := newTestUseCase([]domain.Slot{
		makeSlot("s1", 2025, time.September, 5, 9, 40),
	}, false, now)

	req := &Request{CenterID: "c1"}
	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
