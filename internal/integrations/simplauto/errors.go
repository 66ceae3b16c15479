package simplauto

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("simplauto client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("simplauto client: invalid response")

	// ErrUnauthorized возвращается при отклоненном токене авторизации
	ErrUnauthorized = errors.New("simplauto client: unauthorized")
)
