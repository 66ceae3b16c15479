package book_slot

import (
	"github.com/ctcplatform/CTC-VoiceService/internal/domain"
	bookSlot "github.com/ctcplatform/CTC-VoiceService/internal/usecase/book_slot"
)

// BookRequest тело tool-вызова book от голосовой платформы
type BookRequest struct {
	SlotID     string            `json:"slot_id"`
	ClientInfo ClientInfoPayload `json:"client_info"`
}

// ClientInfoPayload данные клиента из tool-вызова
type ClientInfoPayload struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model,omitempty"`
	LicensePlate string `json:"license_plate"`
}

// ToUseCaseRequest конвертирует HTTP-запрос в модель use case
func (r *BookRequest) ToUseCaseRequest(centerID string) *bookSlot.Request {
	client := domain.ClientInfo{
		FirstName:    r.ClientInfo.FirstName,
		LastName:     r.ClientInfo.LastName,
		Phone:        r.ClientInfo.Phone,
		VehicleBrand: r.ClientInfo.VehicleBrand,
		VehicleModel: r.ClientInfo.VehicleModel,
		LicensePlate: r.ClientInfo.LicensePlate,
	}
	if r.ClientInfo.Email != "" {
		email := r.ClientInfo.Email
		client.Email = &email
	}

	return &bookSlot.Request{
		CenterID: centerID,
		SlotID:   r.SlotID,
		Client:   client,
	}
}

// BookResponse тело ответа tool-вызову. Поле response - фраза
// для дословного произнесения агентом.
type BookResponse struct {
	Response     string `json:"response"`
	BookingID    string `json:"booking_id"`
	ClientName   string `json:"client_name"`
	Vehicle      string `json:"vehicle"`
	LicensePlate string `json:"license_plate"`
	Confirmation string `json:"confirmation"`
	Reminder     string `json:"reminder"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP-ответ
func FromUseCaseResponse(result *bookSlot.Response) *BookResponse {
	return &BookResponse{
		Response:     result.Message,
		BookingID:    result.BookingID,
		ClientName:   result.ClientName,
		Vehicle:      result.Vehicle,
		LicensePlate: result.LicensePlate,
		Confirmation: result.Confirmation,
		Reminder:     result.Reminder,
	}
}
