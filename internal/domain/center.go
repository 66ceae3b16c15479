package domain

import "github.com/ctcplatform/CTC-VoiceService/pkg/types"

// DaySchedule расписание работы центра на один день недели.
// Утренний и дневной интервалы раздельные: между ними перерыв.
type DaySchedule struct {
	MorningStart   types.TimeString // "08:00"
	MorningEnd     types.TimeString // "12:00"
	AfternoonStart types.TimeString // "13:30"
	AfternoonEnd   types.TimeString // "18:30"
	Closed         bool
}

// WeekSchedule расписание работы центра по дням недели
type WeekSchedule struct {
	Monday    DaySchedule
	Tuesday   DaySchedule
	Wednesday DaySchedule
	Thursday  DaySchedule
	Friday    DaySchedule
	Saturday  DaySchedule
	Sunday    DaySchedule
}

// FuelPricing тарифы контроля по типу топлива
type FuelPricing struct {
	Essence float64
	Diesel  float64
}

// Center метаданные центра контроля техники: из них собирается
// конфигурационный промпт голосового агента
type Center struct {
	ID                     string
	Name                   string
	Phone                  string // номер для перевода звонка на оператора
	AgentID                string // ID агента на голосовой платформе, пусто если не создан
	AverageControlDuration int    // минуты
	OpeningHours           WeekSchedule
	PricingGrid            map[VehicleType]FuelPricing
	AllowEarlyDropOff      bool
	PaymentMethods         []string
	OnlineCalendarURL      string
}

// HasAgent returns true if a voice agent has been provisioned for the center
func (c *Center) HasAgent() bool {
	return c.AgentID != ""
}
