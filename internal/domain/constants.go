package domain

// Default values applied when the scheduling provider omits a field
const (
	DefaultSlotDurationMinutes = 50
)

// Half-day hour windows (inclusive bounds, Europe/Paris local hours)
const (
	MorningStartHour   = 8
	MorningEndHour     = 12
	AfternoonStartHour = 13
	AfternoonEndHour   = 18

	// PeriodCutoverHour граница разбиения дня на полудни:
	// час < 12 считается утром, все остальное послеполуденным временем
	PeriodCutoverHour = 12
)

// Message synthesis limits
const (
	// MaxDailyBuckets максимум календарных дней в структурированном ответе
	MaxDailyBuckets = 7

	// DefaultLookaheadDays окно по умолчанию, когда слотов нет вовсе
	DefaultLookaheadDays = 14

	// MaxSpokenTimes максимум времен в одной произносимой фразе;
	// свыше этого показываются ShownWhenTruncated времен и "etc."
	MaxSpokenTimes     = 5
	ShownWhenTruncated = 4
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotIDPrefix префикс идентификаторов слотов; полный ID имеет вид
// slot_<center_id>_<YYYYMMDD>_<HHMM>
const SlotIDPrefix = "slot_"
