package types

import "time"

// TimeString время в формате "HH:MM" (без даты и таймзоны)
// Используется для сравнения и отображения времени слотов и расписаний
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other.
// Формат с ведущими нулями сравнивается лексикографически.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}
