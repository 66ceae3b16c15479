package domain

// VehicleType закрытое перечисление типов транспортных средств,
// которые озвучивает голосовой агент
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "voiture_particuliere"
	VehicleType4x4        VehicleType = "4x4"
	VehicleTypeUtility    VehicleType = "utilitaire"
	VehicleTypeMotorcycle VehicleType = "moto"
	VehicleTypeCamper     VehicleType = "camping_car"
)

// CategoryCodes двухсоставный код категории внешнего провайдера расписания
type CategoryCodes struct {
	VehicleType   int
	VehicleEngine int
}

// vehicleCategoryCodes явная таблица соответствия тегов типам провайдера
var vehicleCategoryCodes = map[VehicleType]CategoryCodes{
	VehicleTypeCar:        {VehicleType: 6, VehicleEngine: 1}, // бензиновый вариант по умолчанию
	VehicleType4x4:        {VehicleType: 7, VehicleEngine: 1},
	VehicleTypeUtility:    {VehicleType: 2, VehicleEngine: 2},
	VehicleTypeMotorcycle: {VehicleType: 9, VehicleEngine: 1},
	VehicleTypeCamper:     {VehicleType: 4, VehicleEngine: 2},
}

// ResolveVehicleType приводит произвольный тег к закрытому перечислению.
// Неизвестные теги деградируют до легкового автомобиля.
func ResolveVehicleType(tag string) VehicleType {
	vt := VehicleType(tag)
	if _, ok := vehicleCategoryCodes[vt]; ok {
		return vt
	}
	return VehicleTypeCar
}

// CategoryCodes возвращает коды категории провайдера для типа ТС
func (v VehicleType) CategoryCodes() CategoryCodes {
	if codes, ok := vehicleCategoryCodes[v]; ok {
		return codes
	}
	return vehicleCategoryCodes[VehicleTypeCar]
}

// TimePreference предпочтение клиента по времени суток
type TimePreference string

const (
	PreferenceMorning   TimePreference = "morning"
	PreferenceAfternoon TimePreference = "afternoon"
	PreferenceAny       TimePreference = "any"
)

// ParseTimePreference приводит строку к закрытому перечислению предпочтений.
// Пустые и неизвестные значения трактуются как "any".
func ParseTimePreference(s string) TimePreference {
	switch s {
	case string(PreferenceMorning):
		return PreferenceMorning
	case string(PreferenceAfternoon):
		return PreferenceAfternoon
	default:
		return PreferenceAny
	}
}
