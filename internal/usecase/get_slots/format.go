package get_slots

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
	"github.com/ctcplatform/CTC-VoiceService/pkg/types"
)

// formatSlot строит все французские строки отображения одного слота
func formatSlot(slot domain.Slot, today time.Time) FormattedSlot {
	local := slot.StartsAt.In(pariscal.Location())
	slotDate := pariscal.DateOf(local)

	dayName := pariscal.WeekdayName(local.Weekday())
	timeOnly := slot.Time()
	dateOnly := pariscal.FormatDayMonth(local)

	baseText := fmt.Sprintf("%s à %s", pariscal.FormatDate(local), timeOnly)

	label := relativeLabel(slotDate, today)
	fullText := baseText
	if label != "" {
		switch label {
		case labelToday, labelTomorrow, labelDayAfterTomorrow:
			fullText = fmt.Sprintf("%s (%s) à %s", label, dateOnly, timeOnly)
		default:
			// "lundi prochain", "ce jeudi" и т.п. - без повторного названия дня
			fullText = fmt.Sprintf("%s (%d %s) à %s", label, local.Day(), pariscal.MonthName(local.Month()), timeOnly)
		}
	}

	return FormattedSlot{
		ID:            slot.ID,
		FullText:      fullText,
		BaseText:      baseText,
		RelativeLabel: label,
		DayName:       dayName,
		DateOnly:      dateOnly,
		TimeOnly:      timeOnly,
		Duration:      strconv.Itoa(slot.DurationMinutes) + " minutes",
		Price:         formatPrice(slot.Price),
		date:          slotDate,
		hour:          local.Hour(),
	}
}

// formatPrice печатает цену без лишних нулей: 78 -> "78€", 78.5 -> "78.5€"
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64) + "€"
}

// dayDisplay строит отображение дня с учётом относительной метки
func dayDisplay(date time.Time, label string) string {
	switch label {
	case "":
		return pariscal.FormatDayMonth(date)
	case labelToday, labelTomorrow, labelDayAfterTomorrow:
		return fmt.Sprintf("%s (%s)", label, pariscal.FormatDayMonth(date))
	default:
		return fmt.Sprintf("%s (%d %s)", label, date.Day(), pariscal.MonthName(date.Month()))
	}
}

// buildDailyAvailability раскладывает отформатированные слоты по календарным
// дням окна [start; end], включая пустые дни; не более MaxDailyBuckets дней
func buildDailyAvailability(formatted []FormattedSlot, today, start, end time.Time) []DayAvailability {
	slotsByDate := make(map[time.Time][]FormattedSlot)
	for _, slot := range formatted {
		slotsByDate[slot.date] = append(slotsByDate[slot.date], slot)
	}

	days := make([]DayAvailability, 0, domain.MaxDailyBuckets)
	for date := pariscal.DateOf(start); !date.After(pariscal.DateOf(end)) && len(days) < domain.MaxDailyBuckets; date = date.AddDate(0, 0, 1) {
		label := relativeLabel(date, today)
		daySlots := slotsByDate[date]

		days = append(days, DayAvailability{
			Date:          date.Format(domain.DateFormat),
			DayDisplay:    dayDisplay(date, label),
			RelativeLabel: label,
			DayName:       pariscal.WeekdayName(date.Weekday()),
			SlotsCount:    len(daySlots),
			Slots:         daySlots,
			IsAvailable:   len(daySlots) > 0,
			date:          date,
		})
	}

	return days
}

// spokenTimes собирает перечисление времен для фразы по возрастанию:
// максимум MaxSpokenTimes, свыше - первые ShownWhenTruncated и "etc."
func spokenTimes(slots []FormattedSlot) string {
	ordered := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		ordered = append(ordered, slot.TimeOnly)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].IsBefore(ordered[j])
	})

	times := make([]string, len(ordered))
	for i, t := range ordered {
		times[i] = t.String()
	}

	if len(times) > domain.MaxSpokenTimes {
		return strings.Join(times[:domain.ShownWhenTruncated], ", ") + ", etc."
	}
	return strings.Join(times, ", ")
}
