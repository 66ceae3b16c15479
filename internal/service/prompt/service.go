package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/pariscal"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type parisTimeProvider struct{}

func (parisTimeProvider) Now() time.Time { return pariscal.Now() }

// Service генератор конфигурационных промптов голосовых агентов.
// Промпт собирается из базового шаблона персоны, временного контекста
// и данных конкретного центра.
type Service struct {
	timeProvider TimeProvider
}

// NewService создает новый генератор промптов
func NewService() *Service {
	return &Service{timeProvider: parisTimeProvider{}}
}

// Generate собирает полный промпт агента для центра
func (s *Service) Generate(center *domain.Center) string {
	temporal := TemporalContext(s.timeProvider.Now())

	prompt := fmt.Sprintf(`%s

## INFORMATIONS SPÉCIFIQUES DE VOTRE CENTRE

%s

### Données du Centre :

**Durée moyenne des contrôles :** %d minutes

**Horaires d'ouverture :**
%s

**Grille tarifaire :**
%s

**Modalités de service :**
%s

**Moyens de paiement acceptés :** %s

**Agenda en ligne :** %s

**Numéro de transfert :** %s

### Questions/Réponses Contrôle Technique Général :

%s

## INSTRUCTIONS FINALES

Utilisez UNIQUEMENT les informations ci-dessus pour répondre aux questions sur votre centre.
Pour les rendez-vous, utilisez OBLIGATOIREMENT les tools get_slots puis book.
En cas de doute sur les informations du centre, proposez de transférer vers %s.

IMPORTANT : Intégrez naturellement le contexte temporel dans vos réponses.`,
		basePrompt,
		temporal,
		center.AverageControlDuration,
		formatOpeningHours(center.OpeningHours),
		formatPricingGrid(center.PricingGrid),
		formatServiceOptions(center),
		formatPaymentMethods(center.PaymentMethods),
		formatCalendar(center.OnlineCalendarURL),
		center.Phone,
		qaBase,
		center.Phone,
	)

	return strings.TrimSpace(prompt)
}

// weekdayLabels порядок и французские подписи дней для блока расписания
var weekdayLabels = []struct {
	label    string
	schedule func(domain.WeekSchedule) domain.DaySchedule
}{
	{"Lundi", func(w domain.WeekSchedule) domain.DaySchedule { return w.Monday }},
	{"Mardi", func(w domain.WeekSchedule) domain.DaySchedule { return w.Tuesday }},
	{"Mercredi", func(w domain.WeekSchedule) domain.DaySchedule { return w.Wednesday }},
	{"Jeudi", func(w domain.WeekSchedule) domain.DaySchedule { return w.Thursday }},
	{"Vendredi", func(w domain.WeekSchedule) domain.DaySchedule { return w.Friday }},
	{"Samedi", func(w domain.WeekSchedule) domain.DaySchedule { return w.Saturday }},
	{"Dimanche", func(w domain.WeekSchedule) domain.DaySchedule { return w.Sunday }},
}

func formatOpeningHours(week domain.WeekSchedule) string {
	var lines []string
	for _, day := range weekdayLabels {
		schedule := day.schedule(week)
		switch {
		case schedule.Closed:
			lines = append(lines, fmt.Sprintf("- %s : fermé", day.label))
		case schedule.AfternoonStart == "":
			lines = append(lines, fmt.Sprintf("- %s : %s-%s",
				day.label, schedule.MorningStart, schedule.MorningEnd))
		default:
			lines = append(lines, fmt.Sprintf("- %s : %s-%s et %s-%s",
				day.label, schedule.MorningStart, schedule.MorningEnd,
				schedule.AfternoonStart, schedule.AfternoonEnd))
		}
	}
	return strings.Join(lines, "\n")
}

// vehicleLabels подписи типов ТС в тарифной сетке
var vehicleLabels = []struct {
	vehicleType domain.VehicleType
	label       string
}{
	{domain.VehicleTypeCar, "Voiture particulière"},
	{domain.VehicleType4x4, "4x4"},
	{domain.VehicleTypeUtility, "Utilitaire"},
	{domain.VehicleTypeMotorcycle, "Moto"},
	{domain.VehicleTypeCamper, "Camping-car"},
}

func formatPricingGrid(grid map[domain.VehicleType]domain.FuelPricing) string {
	var lines []string
	for _, entry := range vehicleLabels {
		pricing, ok := grid[entry.vehicleType]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s : essence %.0f€, diesel %.0f€",
			entry.label, pricing.Essence, pricing.Diesel))
	}
	if len(lines) == 0 {
		return "- Tarifs communiqués sur demande"
	}
	return strings.Join(lines, "\n")
}

func formatServiceOptions(center *domain.Center) string {
	if center.AllowEarlyDropOff {
		return "- Dépôt du véhicule possible avant l'ouverture"
	}
	return "- Présence du client requise aux horaires d'ouverture"
}

func formatPaymentMethods(methods []string) string {
	if len(methods) == 0 {
		return "carte bancaire, espèces"
	}
	return strings.Join(methods, ", ")
}

func formatCalendar(url string) string {
	if url == "" {
		return "réservation par téléphone uniquement"
	}
	return url
}
