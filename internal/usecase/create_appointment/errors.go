package create_appointment

import "errors"

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffNotWorking возвращается, когда мастер не работает в указанную дату
	ErrStaffNotWorking = errors.New("staff member is not working on this date")

	// ErrOutsideOperatingWindow возвращается, когда интервал записи
	// выходит за рабочее окно мастера
	ErrOutsideOperatingWindow = errors.New("appointment is outside operating window")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с
	// существующей записью или blocking-блоком. Проверяется внутри
	// сериализуемой транзакции - проигравший из двух конкурентных
	// запросов получает именно эту ошибку
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrTooLateToBook возвращается при нарушении минимального времени до записи
	ErrTooLateToBook = errors.New("too late to book this time")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMalformedTime возвращается при некорректном формате времени
	ErrMalformedTime = errors.New("malformed time value")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
