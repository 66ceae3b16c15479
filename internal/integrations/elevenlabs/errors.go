package elevenlabs

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("elevenlabs client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("elevenlabs client: invalid response")

	// ErrAgentNotFound возвращается, когда агент не найден на платформе
	ErrAgentNotFound = errors.New("elevenlabs client: agent not found")

	// ErrUnauthorized возвращается при отклоненном API-ключе
	ErrUnauthorized = errors.New("elevenlabs client: unauthorized")
)
