package create_block

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedTime возвращается при некорректном формате времени
	ErrMalformedTime = errors.New("malformed time value")

	// ErrConflictingAppointments возвращается, когда blocking-блок
	// пересекается с существующими записями и force не установлен
	ErrConflictingAppointments = errors.New("block overlaps existing appointments")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
