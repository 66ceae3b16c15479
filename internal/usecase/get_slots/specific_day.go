package get_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// resolveSpecificDay переводит свободный текст про конкретный день в
// календарную дату. Второй результат false - день не распознан.
//
// Правила модификаторов (поведение зафиксировано, см. DESIGN.md):
//   - "suivant"/"d'après": следующее вхождение дня недели плюс ещё 7 дней
//   - "prochain" и отсутствие модификатора: следующее вхождение, сегодняшний
//     день исключается (если сегодня - этот же день недели, берется +7)
func resolveSpecificDay(text string, today time.Time) (time.Time, bool) {
	today = pariscal.DateOf(today)
	lower := strings.ToLower(text)

	weekday, found := pariscal.ParseWeekday(lower)
	if !found {
		// Идиомы без названия дня недели; "après-demain" проверяется
		// раньше, иначе его перекрыла бы подстрока "demain"
		if strings.Contains(lower, "après-demain") {
			return today.AddDate(0, 0, 2), true
		}
		if strings.Contains(lower, "demain") {
			return today.AddDate(0, 0, 1), true
		}
		return time.Time{}, false
	}

	// time.Weekday приводим к ISO-номеру (Monday=0), как и в календаре
	targetISO := (int(weekday) + 6) % 7
	todayISO := (int(today.Weekday()) + 6) % 7

	daysAhead := targetISO - todayISO
	if daysAhead <= 0 {
		daysAhead += 7
	}
	if strings.Contains(lower, "suivant") || strings.Contains(lower, "d'après") {
		daysAhead += 7
	}

	return today.AddDate(0, 0, daysAhead), true
}

// specificDayResponse строит ответ на запрос конкретного дня: уточнение
// периода, перечисление времен или сообщение о недоступности. Любой исход -
// разговорная фраза, а не ошибка.
func specificDayResponse(req *Request, days []DayAvailability, today time.Time) string {
	targetDate, ok := resolveSpecificDay(req.SpecificDay, today)
	if !ok {
		return fmt.Sprintf("Désolé, je n'ai pas compris quel jour vous voulez dire par '%s'.", req.SpecificDay)
	}

	display := pariscal.FormatDayMonth(targetDate)

	var targetDay *DayAvailability
	for i := range days {
		if days[i].IsAvailable && days[i].date.Equal(targetDate) {
			targetDay = &days[i]
			break
		}
	}

	if targetDay == nil {
		return fmt.Sprintf("Désolé, je n'ai pas de créneaux disponibles pour le %s. Je peux vous proposer d'autres jours si vous le souhaitez.", display)
	}

	// Период указан: сужаем до него
	if req.Period != nil {
		periodSlots := filterByPeriod(targetDay.Slots, *req.Period)
		if len(periodSlots) == 0 {
			return fmt.Sprintf("Désolé, je n'ai pas de créneaux disponibles %s %s.", req.SpecificDay, *req.Period)
		}
		return fmt.Sprintf("Pour %s %s, j'ai %s. Quelle heure vous arrange ?", display, *req.Period, spokenTimes(periodSlots))
	}

	// Период не указан: либо уточняем, либо сразу перечисляем единственный
	morning := filterByPeriod(targetDay.Slots, domain.PeriodMorning)
	afternoon := filterByPeriod(targetDay.Slots, domain.PeriodAfternoon)

	switch {
	case len(morning) > 0 && len(afternoon) > 0:
		return fmt.Sprintf("Pour %s, plutôt le matin ou l'après-midi ?", display)
	case len(morning) > 0:
		return fmt.Sprintf("Pour %s, j'ai seulement le matin : %s. Quelle heure vous arrange ?", display, spokenTimes(morning))
	default:
		return fmt.Sprintf("Pour %s, j'ai seulement l'après-midi : %s. Quelle heure vous arrange ?", display, spokenTimes(afternoon))
	}
}

// filterByPeriod оставляет слоты, попадающие в указанный полупериод дня
func filterByPeriod(slots []FormattedSlot, period domain.Period) []FormattedSlot {
	filtered := make([]FormattedSlot, 0, len(slots))
	for _, slot := range slots {
		isMorning := slot.hour < domain.PeriodCutoverHour
		if (period == domain.PeriodMorning) == isMorning {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}
