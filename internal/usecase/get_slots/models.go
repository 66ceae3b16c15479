package get_slots

import (
	"time"

	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	"github.com/ctcplatform/CTC-VoiceService/pkg/types"
)

// Request модель запроса на получение слотов от голосовой платформы
type Request struct {
	CenterID    string
	VehicleType domain.VehicleType
	Preference  domain.TimePreference

	// StartDate/EndDate диапазон, присланный платформой; учитывается
	// только при включенном respect_client_range (LLM часто ошибается
	// в вычислении дат, поэтому по умолчанию диапазон игнорируется)
	StartDate *time.Time
	EndDate   *time.Time

	// SpecificDay свободный текст клиента про конкретный день
	// ("lundi", "lundi prochain", "demain"); пустая строка - не задан
	SpecificDay string

	// Period период внутри конкретного дня, если клиент его назвал
	Period *domain.Period
}

// Response модель ответа. Message - единственная фраза, которую голосовой
// агент обязан произнести дословно; остальные поля - структурированные
// данные для программного использования.
type Response struct {
	Message           string
	Suggestion        string
	Slots             []FormattedSlot
	DailyAvailability []DayAvailability
	DayMessages       map[string]string
}

// FormattedSlot слот с готовыми французскими строками отображения
type FormattedSlot struct {
	ID            string
	FullText      string           // "demain (jeudi 4 septembre) à 09:40"
	BaseText      string           // "jeudi 4 septembre 2025 à 09:40"
	RelativeLabel string           // "demain", "ce jeudi", "lundi prochain"; пусто - без метки
	DayName       string           // "jeudi"
	DateOnly      string           // "jeudi 4 septembre"
	TimeOnly      types.TimeString // "09:40"
	Duration      string           // "50 minutes"
	Price         string           // "78€"

	date time.Time // календарная дата слота, для внутренней группировки
	hour int       // локальный час начала, для разбиения на полудни
}

// DayAvailability слоты одного календарного дня
type DayAvailability struct {
	Date          string // ISO-дата
	DayDisplay    string
	RelativeLabel string
	DayName       string
	SlotsCount    int
	Slots         []FormattedSlot
	IsAvailable   bool

	date time.Time
}

// HalfDay пара (день, период) с попавшими в неё слотами
type HalfDay struct {
	DayDisplay    string
	RelativeLabel string
	Period        domain.Period
	Slots         []FormattedSlot
	PeriodDisplay string
}
