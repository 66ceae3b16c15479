package book_slot

import "github.com/ctcplatform/CTC-VoiceService/internal/domain"

// Request модель запроса на бронирование слота
type Request struct {
	CenterID string
	SlotID   string
	Client   domain.ClientInfo
}

// Response модель ответа с подтверждением бронирования.
// Message произносится агентом, остальные поля эхо-данные для платформы.
type Response struct {
	Message      string
	BookingID    string
	ClientName   string
	Vehicle      string
	LicensePlate string
	Confirmation string
	Reminder     string
}
