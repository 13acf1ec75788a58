package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrMalformedTime, err)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be at least %d", ErrInvalidInput, domain.MinServiceDurationMinutes)
	}
	if req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must not exceed %d", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrInvalidInput)
	}
	for i, item := range req.Items {
		if item.StaffID <= 0 {
			return fmt.Errorf("%w: items[%d].staffID must be positive", ErrInvalidInput, i)
		}
		if item.ServiceName == "" {
			return fmt.Errorf("%w: items[%d].serviceName is required", ErrInvalidInput, i)
		}
		if item.DurationMinutes <= 0 {
			return fmt.Errorf("%w: items[%d].durationMinutes must be positive", ErrInvalidInput, i)
		}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateLeadTime проверяет минимальное время до записи
// Действует только для сегодняшней даты, единица измерения - минуты
func validateLeadTime(
	date time.Time,
	startTime types.TimeString,
	now time.Time,
	leadTimeMinutes int,
) error {
	if !isSameDay(date, now) {
		return nil
	}

	start, err := startTime.MinutesFromMidnight()
	if err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrMalformedTime, err)
	}

	minAllowed := now.Hour()*60 + now.Minute() + leadTimeMinutes
	if start < minAllowed {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, leadTimeMinutes)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
