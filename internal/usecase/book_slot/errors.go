package book_slot

import "errors"

var (
	// ErrSlotNotForCenter возвращается, когда идентификатор слота не несет
	// префикс этого центра
	ErrSlotNotForCenter = errors.New("slot does not belong to this center")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
