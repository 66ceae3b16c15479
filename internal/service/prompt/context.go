package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// TemporalContext строит блок временного контекста для промпта агента:
// опорные даты вокруг "сегодня", окна полудней и форматы дат для API.
// Агент опирается на этот блок при интерпретации "demain", "la semaine
// prochaine" и прочих относительных выражений клиента.
func TemporalContext(now time.Time) string {
	now = now.In(pariscal.Location())
	today := pariscal.DateOf(now)

	yesterday := today.AddDate(0, 0, -1)
	dayBeforeYesterday := today.AddDate(0, 0, -2)
	tomorrow := today.AddDate(0, 0, 1)
	dayAfterTomorrow := today.AddDate(0, 0, 2)

	nextMonday := pariscal.NextMonday(today)
	_, nextSunday := pariscal.WeekRange(nextMonday)
	mondayIn2Weeks := nextMonday.AddDate(0, 0, 7)
	_, sundayIn2Weeks := pariscal.WeekRange(mondayIn2Weeks)

	nextMonth := today.AddDate(0, 1, 0)
	nextMonthStart, nextMonthEnd := pariscal.MonthRange(nextMonth.Year(), nextMonth.Month())

	var b strings.Builder

	b.WriteString("CONTEXTE TEMPOREL ACTUEL (Heure de Paris, France) :\n\n")
	fmt.Fprintf(&b, "📅 MAINTENANT : %s à %s (%s)\n\n",
		pariscal.FormatDate(now), now.Format("15:04"), now.Format("UTC-07:00"))

	b.WriteString("📋 DATES DE RÉFÉRENCE :\n")
	fmt.Fprintf(&b, "• Avant-hier : %s\n", pariscal.FormatDate(dayBeforeYesterday))
	fmt.Fprintf(&b, "• Hier : %s\n", pariscal.FormatDate(yesterday))
	fmt.Fprintf(&b, "• Aujourd'hui : %s\n", pariscal.FormatDate(today))
	fmt.Fprintf(&b, "• Ce matin : %s matin (08h00-12h00)\n", pariscal.FormatDate(today))
	fmt.Fprintf(&b, "• Cet après-midi : %s après-midi (13h00-18h00)\n", pariscal.FormatDate(today))
	fmt.Fprintf(&b, "• Demain : %s\n", pariscal.FormatDate(tomorrow))
	fmt.Fprintf(&b, "• Après-demain : %s\n", pariscal.FormatDate(dayAfterTomorrow))
	fmt.Fprintf(&b, "• La semaine prochaine : du %s au %s\n",
		pariscal.FormatDate(nextMonday), pariscal.FormatDate(nextSunday))
	fmt.Fprintf(&b, "• Dans 2 semaines : du %s au %s\n",
		pariscal.FormatDate(mondayIn2Weeks), pariscal.FormatDate(sundayIn2Weeks))
	fmt.Fprintf(&b, "• Le mois prochain : du %d %s %d au %d %s %d\n\n",
		nextMonthStart.Day(), pariscal.MonthName(nextMonthStart.Month()), nextMonthStart.Year(),
		nextMonthEnd.Day(), pariscal.MonthName(nextMonthEnd.Month()), nextMonthEnd.Year())

	b.WriteString("⏰ POUR LES CRÉNEAUX HORAIRES :\n")
	b.WriteString("• Matin : 08h00-12h00\n")
	b.WriteString("• Après-midi : 13h00-18h00\n")
	b.WriteString("• Soirée : 18h00-21h00\n\n")

	b.WriteString("🗓️ FORMATS À UTILISER POUR L'API :\n")
	fmt.Fprintf(&b, "• Date ISO : %s\n", now.Format("2006-01-02"))
	fmt.Fprintf(&b, "• DateTime ISO : %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "• Timestamp Unix : %d\n\n", now.Unix())

	b.WriteString("IMPORTANT : Utilisez ces informations pour interpréter correctement les demandes temporelles des utilisateurs et interroger l'API de réservation avec les bonnes dates.")

	return b.String()
}
