// Package pariscal содержит календарные утилиты для гражданского времени
// Europe/Paris: опорные даты (завтра, следующий понедельник, следующий месяц)
// и разбор фиксированного словаря относительных выражений.
package pariscal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// location фиксированная операционная таймзона всех дат домена
var location = mustLoadLocation()

func mustLoadLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		panic("pariscal: failed to load Europe/Paris location: " + err.Error())
	}
	return loc
}

// Location возвращает таймзону Europe/Paris
func Location() *time.Location {
	return location
}

// Now возвращает текущее время в таймзоне Europe/Paris
func Now() time.Time {
	return time.Now().In(location)
}

// DateOf обнуляет время, оставляя только календарную дату в Europe/Paris
func DateOf(t time.Time) time.Time {
	t = t.In(location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
}

// DaysBetween возвращает количество календарных дней от from до to
// (положительное, если to позже from). Дни считаются по календарным
// компонентам в UTC: парижские сутки перехода на летнее/зимнее время
// длятся 23 или 25 часов, и деление разницы Sub на 24 часа там врёт.
func DaysBetween(from, to time.Time) int {
	from = from.In(location)
	to = to.In(location)
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// SameDay возвращает true, если обе даты приходятся на один календарный день
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.In(location).Date()
	y2, m2, d2 := b.In(location).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// NextMonday возвращает дату ближайшего понедельника строго после today.
// Если today - понедельник, возвращает понедельник через неделю.
func NextMonday(today time.Time) time.Time {
	today = DateOf(today)
	// time.Weekday: Sunday=0 ... Saturday=6; приводим к ISO (Monday=0)
	isoWeekday := (int(today.Weekday()) + 6) % 7
	daysUntil := (7 - isoWeekday) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return today.AddDate(0, 0, daysUntil)
}

// EndOfWeek возвращает воскресенье недели, в которую входит day
func EndOfWeek(day time.Time) time.Time {
	day = DateOf(day)
	isoWeekday := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, 6-isoWeekday)
}

// WeekRange возвращает понедельник и воскресенье недели, начинающейся с monday
func WeekRange(monday time.Time) (time.Time, time.Time) {
	monday = DateOf(monday)
	return monday, monday.AddDate(0, 0, 6)
}

// MonthRange возвращает первый и последний день месяца в Europe/Paris
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, location)
	last := first.AddDate(0, 1, -1)
	return first, last
}

var digitsRe = regexp.MustCompile(`\d+`)

// RelativePhraseDate отображает фиксированный словарь относительных выражений
// на конкретную дату. Нераспознанные выражения деградируют до сегодняшней даты,
// а не до ошибки: это закрытый справочник, не парсер.
func RelativePhraseDate(phrase string, now time.Time) time.Time {
	now = now.In(location)
	today := DateOf(now)
	nextMonday := NextMonday(today)

	switch strings.TrimSpace(strings.ToLower(phrase)) {
	case "avant-hier":
		return today.AddDate(0, 0, -2)
	case "hier":
		return today.AddDate(0, 0, -1)
	case "aujourd'hui", "ce matin", "cet après-midi":
		return today
	case "demain":
		return today.AddDate(0, 0, 1)
	case "après-demain":
		return today.AddDate(0, 0, 2)
	case "la semaine prochaine", "semaine prochaine":
		return nextMonday
	}

	lower := strings.ToLower(phrase)

	// "dans N semaines": понедельник N-й недели, отсчитываемой от следующего понедельника
	if strings.Contains(lower, "semaine") {
		if match := digitsRe.FindString(lower); match != "" {
			weeks, _ := strconv.Atoi(match)
			return nextMonday.AddDate(0, 0, (weeks-1)*7)
		}
		return nextMonday
	}

	// "le mois prochain" / "dans N mois"
	if strings.Contains(lower, "mois") {
		months := 1
		if !strings.Contains(lower, "prochain") {
			if match := digitsRe.FindString(lower); match != "" {
				months, _ = strconv.Atoi(match)
			}
		}
		return today.AddDate(0, months, 0)
	}

	return today
}

// RelativePhraseRange отображает выражения про недели и месяцы на диапазон дат.
// Второй результат false, если выражение не описывает диапазон.
func RelativePhraseRange(phrase string, now time.Time) (time.Time, time.Time, bool) {
	now = now.In(location)
	nextMonday := NextMonday(now)
	lower := strings.ToLower(phrase)

	if strings.Contains(lower, "semaine") {
		targetMonday := nextMonday
		if match := digitsRe.FindString(lower); match != "" {
			weeks, _ := strconv.Atoi(match)
			targetMonday = nextMonday.AddDate(0, 0, (weeks-1)*7)
		}
		monday, sunday := WeekRange(targetMonday)
		return monday, sunday, true
	}

	if strings.Contains(lower, "mois") {
		months := 1
		if !strings.Contains(lower, "prochain") {
			if match := digitsRe.FindString(lower); match != "" {
				months, _ = strconv.Atoi(match)
			}
		}
		target := now.AddDate(0, months, 0)
		first, last := MonthRange(target.Year(), target.Month())
		return first, last, true
	}

	return time.Time{}, time.Time{}, false
}
