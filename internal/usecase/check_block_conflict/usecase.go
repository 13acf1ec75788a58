package check_block_conflict

import (
	"context"
	"fmt"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	"github.com/m04kA/SPS-SchedulingService/pkg/ptr"
)

// UseCase use case проверки конфликтов перед созданием блока
type UseCase struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute возвращает количество и список неотменённых записей мастера,
// пересекающихся с кандидатом [start, end). Тот же полуоткрытый тест
// пересечения, что и в расчёте слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBlockConflict: staff=%d, date=%s, range=%s-%s",
		req.StaffID, req.Date.Format(domain.DateFormat), req.Start, req.End)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckBlockConflict: validation failed: %v", err)
		return nil, err
	}

	candidateStart, err := req.Start.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrMalformedTime, err)
	}
	candidateEnd, err := req.End.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrMalformedTime, err)
	}
	candidate := domain.MinuteInterval{Start: candidateStart, End: candidateEnd}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{
		Date:    req.Date,
		StaffID: ptr.Ptr(req.StaffID),
	})
	if err != nil {
		uc.logger.Error("CheckBlockConflict: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	conflicts := make([]Conflict, 0)
	for _, appt := range appointments {
		if !appt.OccupiesTime() {
			continue
		}
		if !appt.References(req.StaffID) {
			continue
		}

		interval, err := appt.Interval()
		if err != nil {
			uc.logger.Error("CheckBlockConflict: malformed appointment id=%d: %v", appt.ID, err)
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, appt.ID, err)
		}

		if !candidate.Overlaps(interval) {
			continue
		}

		endTime, err := appt.EndTime()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, appt.ID, err)
		}

		conflicts = append(conflicts, Conflict{
			AppointmentID: appt.ID,
			Reference:     appt.Reference,
			ClientID:      appt.ClientID,
			StartTime:     appt.StartTime,
			EndTime:       endTime,
			Status:        string(appt.Status),
		})
	}

	uc.logger.Info("CheckBlockConflict: staff=%d has %d conflicting appointments", req.StaffID, len(conflicts))

	return &Response{
		ConflictingCount: len(conflicts),
		Conflicts:        conflicts,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start: %v", ErrMalformedTime, err)
	}
	if err := req.End.Validate(); err != nil {
		return fmt.Errorf("%w: invalid end: %v", ErrMalformedTime, err)
	}
	if !req.Start.IsBefore(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	return nil
}
