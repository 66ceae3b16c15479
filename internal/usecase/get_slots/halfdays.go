package get_slots

import (
	"fmt"
	"strings"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
)

// Фразы пустых исходов: различаем "слотов нет вовсе" и "всё отфильтровано"
const (
	msgNoSlotsAtAll   = "Aucun créneau disponible actuellement."
	msgAllSlotsFull   = "Tous les créneaux sont complets pour la période demandée."
	msgSuggestion     = "Essayez une autre période ou appelez directement le centre"
	msgNoSlotsForDays = "Aucun créneau disponible pour cette période"
)

// buildHalfDays разбивает каждый непустой день на полудни: слот с часом
// меньше границы - утро, иначе - после полудня. Порядок дней сохраняется,
// утро всегда раньше второй половины дня.
func buildHalfDays(days []DayAvailability) []HalfDay {
	halfDays := make([]HalfDay, 0, len(days)*2)

	for _, day := range days {
		if !day.IsAvailable {
			continue
		}

		var morning, afternoon []FormattedSlot
		for _, slot := range day.Slots {
			if slot.hour < domain.PeriodCutoverHour {
				morning = append(morning, slot)
			} else {
				afternoon = append(afternoon, slot)
			}
		}

		if len(morning) > 0 {
			halfDays = append(halfDays, HalfDay{
				DayDisplay:    day.DayDisplay,
				RelativeLabel: day.RelativeLabel,
				Period:        domain.PeriodMorning,
				Slots:         morning,
				PeriodDisplay: day.DayDisplay + " " + string(domain.PeriodMorning),
			})
		}
		if len(afternoon) > 0 {
			halfDays = append(halfDays, HalfDay{
				DayDisplay:    day.DayDisplay,
				RelativeLabel: day.RelativeLabel,
				Period:        domain.PeriodAfternoon,
				Slots:         afternoon,
				PeriodDisplay: day.DayDisplay + " " + string(domain.PeriodAfternoon),
			})
		}
	}

	return halfDays
}

// formatHalfDayWithTime строит произносимое описание полудня с опорным
// временем первого слота, упрощая относительную метку до идиомы
func formatHalfDayWithTime(halfDay HalfDay, firstTime string) string {
	period := string(halfDay.Period)
	label := halfDay.RelativeLabel

	switch {
	case label == labelTomorrow:
		return fmt.Sprintf("demain %s à partir de %s", period, firstTime)

	case label == labelToday:
		if halfDay.Period == domain.PeriodMorning {
			return "ce matin à partir de " + firstTime
		}
		return "cet après-midi à partir de " + firstTime

	case label == labelDayAfterTomorrow:
		return fmt.Sprintf("après-demain %s à partir de %s", period, firstTime)

	case strings.Contains(label, "prochain"):
		// "lundi prochain" -> "lundi matin prochain"
		dayName := strings.TrimSuffix(label, " prochain")
		return fmt.Sprintf("%s %s prochain à partir de %s", dayName, period, firstTime)

	case strings.HasPrefix(label, "ce "):
		return fmt.Sprintf("%s %s à partir de %s", label, period, firstTime)

	default:
		return fmt.Sprintf("%s %s à partir de %s", halfDay.DayDisplay, period, firstTime)
	}
}

// earliestTime возвращает наименьшее время начала среди слотов полудня.
// Порядок слотов провайдера не гарантирован, полагаться на первый нельзя.
func earliestTime(slots []FormattedSlot) string {
	earliest := slots[0].TimeOnly
	for _, slot := range slots[1:] {
		if slot.TimeOnly.IsBefore(earliest) {
			earliest = slot.TimeOnly
		}
	}
	return earliest.String()
}

// synthesizeOffer строит единственную фразу-предложение: первые одна или две
// доступные полудни с опорным временем каждой
func synthesizeOffer(halfDays []HalfDay, hadAnySlots bool) string {
	switch {
	case len(halfDays) >= 2:
		first := formatHalfDayWithTime(halfDays[0], earliestTime(halfDays[0].Slots))
		second := formatHalfDayWithTime(halfDays[1], earliestTime(halfDays[1].Slots))
		return fmt.Sprintf("J'ai des créneaux disponibles %s, ou %s.", first, second)

	case len(halfDays) == 1:
		first := formatHalfDayWithTime(halfDays[0], earliestTime(halfDays[0].Slots))
		return fmt.Sprintf("J'ai des créneaux disponibles %s.", first)

	case hadAnySlots:
		return msgAllSlotsFull

	default:
		return msgNoSlotsAtAll
	}
}

// buildDayMessages строит фразу на каждый непустой день, ключ - относительная
// метка дня либо название дня недели
func buildDayMessages(days []DayAvailability) map[string]string {
	messages := make(map[string]string)

	for _, day := range days {
		if !day.IsAvailable {
			continue
		}

		key := day.RelativeLabel
		if key == "" {
			key = day.DayName
		}

		times := spokenTimes(day.Slots)

		var prefix string
		switch {
		case day.RelativeLabel == labelTomorrow,
			day.RelativeLabel == labelToday,
			day.RelativeLabel == labelDayAfterTomorrow,
			strings.Contains(day.RelativeLabel, "prochain"),
			strings.HasPrefix(day.RelativeLabel, "ce "):
			prefix = capitalize(day.RelativeLabel)
		default:
			prefix = day.DayDisplay
		}

		messages[key] = fmt.Sprintf("%s, j'ai de la place à %s.", prefix, times)
	}

	return messages
}

// capitalize поднимает первую букву фразы (с учётом не-ASCII)
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
