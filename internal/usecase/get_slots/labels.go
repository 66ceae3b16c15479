package get_slots

import (
	"time"

	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// Фиксированные идиомы ближайших дней
const (
	labelToday            = "aujourd'hui"
	labelTomorrow         = "demain"
	labelDayAfterTomorrow = "après-demain"
)

// relativeLabel вычисляет относительную метку даты slotDate по отношению к
// today. Правила проверяются строго в этом порядке, первое совпавшее
// побеждает: дата внутри следующей недели никогда не перепроверяется
// правилом delta<=7.
//
//  1. delta 0/1/2 - "aujourd'hui"/"demain"/"après-demain"
//  2. дата внутри [следующий понедельник; +6 дней] - "<день> prochain"
//  3. delta 3..7 и дата не позже воскресенья текущей недели - "ce <день>"
//     (иначе "<день> prochain")
//  4. всё остальное - без метки, показывается только полная дата
func relativeLabel(slotDate, today time.Time) string {
	slotDate = pariscal.DateOf(slotDate)
	today = pariscal.DateOf(today)
	delta := pariscal.DaysBetween(today, slotDate)

	switch delta {
	case 0:
		return labelToday
	case 1:
		return labelTomorrow
	case 2:
		return labelDayAfterTomorrow
	}

	weekdayName := pariscal.WeekdayName(slotDate.Weekday())

	nextMonday := pariscal.NextMonday(today)
	nextSunday := nextMonday.AddDate(0, 0, 6)
	if !slotDate.Before(nextMonday) && !slotDate.After(nextSunday) {
		return weekdayName + " prochain"
	}

	if delta > 2 && delta <= 7 {
		// Дата ещё в текущей неделе (до её воскресенья включительно)?
		thisWeekEnd := pariscal.EndOfWeek(today)
		if !slotDate.After(thisWeekEnd) {
			return "ce " + weekdayName
		}
		return weekdayName + " prochain"
	}

	return ""
}
