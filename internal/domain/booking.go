package domain

import (
	"strings"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
)

// ClientInfo контактные данные клиента и сведения об автомобиле,
// собранные голосовым агентом во время звонка
type ClientInfo struct {
	FirstName    string
	LastName     string
	Phone        string
	Email        *string
	VehicleBrand string
	VehicleModel string
	LicensePlate string
}

// FullName возвращает полное имя клиента
func (c *ClientInfo) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Vehicle возвращает марку и модель автомобиля одной строкой
func (c *ClientInfo) Vehicle() string {
	return strings.TrimSpace(c.VehicleBrand + " " + c.VehicleModel)
}

// Booking represents a confirmed appointment reservation.
// Created once per booking request, never updated or deleted.
type Booking struct {
	ID        string
	CenterID  string
	SlotID    string
	Client    ClientInfo
	Status    BookingStatus
	CreatedAt time.Time
}
