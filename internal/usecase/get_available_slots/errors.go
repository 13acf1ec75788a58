package get_available_slots

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedTime возвращается, когда время в расписании или записях
	// не соответствует формату HH:MM. Такие данные не должны молча
	// превращаться в мусорные интервалы
	ErrMalformedTime = errors.New("malformed time value")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
