package get_calendar

import "errors"

var (
	// ErrInvalidInput - некорректные входные данные
	ErrInvalidInput = errors.New("invalid input data")
	// ErrMalformedTime - событие в хранилище содержит некорректное время
	ErrMalformedTime = errors.New("malformed time value in stored event")
	// ErrInternal - внутренняя ошибка сервиса
	ErrInternal = errors.New("internal server error")
)
