package pariscal

import (
	"fmt"
	"strings"
	"time"
)

// weekdayNames закрытая таблица французских названий дней недели
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "lundi",
	time.Tuesday:   "mardi",
	time.Wednesday: "mercredi",
	time.Thursday:  "jeudi",
	time.Friday:    "vendredi",
	time.Saturday:  "samedi",
	time.Sunday:    "dimanche",
}

// monthNames закрытая таблица французских названий месяцев
var monthNames = map[time.Month]string{
	time.January:   "janvier",
	time.February:  "février",
	time.March:     "mars",
	time.April:     "avril",
	time.May:       "mai",
	time.June:      "juin",
	time.July:      "juillet",
	time.August:    "août",
	time.September: "septembre",
	time.October:   "octobre",
	time.November:  "novembre",
	time.December:  "décembre",
}

// WeekdayName возвращает французское название дня недели
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// MonthName возвращает французское название месяца
func MonthName(m time.Month) string {
	return monthNames[m]
}

// weekdayOrder фиксированный порядок поиска, чтобы результат был
// детерминированным при нескольких совпадениях в тексте
var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// ParseWeekday ищет название дня недели как подстроку в тексте (без учета
// регистра). Возвращает false, если ни один день не найден.
func ParseWeekday(text string) (time.Weekday, bool) {
	lower := strings.ToLower(text)
	for _, weekday := range weekdayOrder {
		if strings.Contains(lower, weekdayNames[weekday]) {
			return weekday, true
		}
	}
	return 0, false
}

// FormatDate возвращает полную французскую запись даты: "jeudi 4 septembre 2025"
func FormatDate(t time.Time) string {
	t = t.In(location)
	return fmt.Sprintf("%s %d %s %d", WeekdayName(t.Weekday()), t.Day(), MonthName(t.Month()), t.Year())
}

// FormatDayMonth возвращает короткую запись: "jeudi 4 septembre"
func FormatDayMonth(t time.Time) string {
	t = t.In(location)
	return fmt.Sprintf("%s %d %s", WeekdayName(t.Weekday()), t.Day(), MonthName(t.Month()))
}
