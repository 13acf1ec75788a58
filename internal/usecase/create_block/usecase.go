package create_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SPS-SchedulingService/pkg/ptr"
)

// UseCase use case создания ручного блока времени
// Перед записью выполняет advisory-проверку пересечений с записями;
// это предупреждение, а не гарантия (см. create_appointment для
// настоящего инварианта на пути записи)
type UseCase struct {
	staffRepo       StaffRepository
	appointmentRepo AppointmentRepository
	blockRepo       BlockRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	appointmentRepo AppointmentRepository,
	blockRepo BlockRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		appointmentRepo: appointmentRepo,
		blockRepo:       blockRepo,
		logger:          logger,
	}
}

// Execute выполняет use case создания блока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlock: staff=%d, date=%s, range=%s-%s, kind=%s, force=%t",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.Kind, req.Force)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование мастера
	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateBlock: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBlock: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Для blocking-блоков проверяем пересечения с записями
	// available-блоки время не занимают и проверки не требуют
	var conflicts []ConflictingAppointment
	if req.Kind == domain.BlockKindBlocking {
		found, err := uc.findConflicts(ctx, req)
		if err != nil {
			return nil, err
		}

		if len(found) > 0 && !req.Force {
			uc.logger.Warn("CreateBlock: %d conflicting appointments for staff=%d, rejecting without force",
				len(found), req.StaffID)
			return nil, fmt.Errorf("%w: %d appointments", ErrConflictingAppointments, len(found))
		}
		conflicts = found
	}

	// 4. Сохраняем блок
	blk := &domain.Block{
		StaffID:   req.StaffID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Kind:      req.Kind,
		Reason:    req.Reason,
	}

	created, err := uc.blockRepo.Create(ctx, blk)
	if err != nil {
		uc.logger.Error("CreateBlock: failed to create block: %v", err)
		return nil, fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBlock: created block id=%d (%d conflicts)", created.ID, len(conflicts))

	return &Response{
		ID:        created.ID,
		StaffID:   created.StaffID,
		Date:      created.Date,
		StartTime: created.StartTime,
		EndTime:   created.EndTime,
		Kind:      created.Kind,
		Reason:    created.Reason,
		CreatedAt: created.CreatedAt,
		Conflicts: conflicts,
	}, nil
}

// findConflicts собирает неотменённые записи мастера, пересекающиеся с блоком
// Полуоткрытый тест пересечения, как и везде в сервисе
func (uc *UseCase) findConflicts(ctx context.Context, req *Request) ([]ConflictingAppointment, error) {
	candidateStart, err := req.StartTime.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", ErrMalformedTime, err)
	}
	candidateEnd, err := req.EndTime.MinutesFromMidnight()
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", ErrMalformedTime, err)
	}
	candidate := domain.MinuteInterval{Start: candidateStart, End: candidateEnd}

	appointments, err := uc.appointmentRepo.GetByDate(ctx, domain.DayAppointmentsFilter{
		Date:    req.Date,
		StaffID: ptr.Ptr(req.StaffID),
	})
	if err != nil {
		uc.logger.Error("CreateBlock: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	conflicts := make([]ConflictingAppointment, 0)
	for _, appt := range appointments {
		if !appt.OccupiesTime() || !appt.References(req.StaffID) {
			continue
		}

		interval, err := appt.Interval()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, appt.ID, err)
		}
		if !candidate.Overlaps(interval) {
			continue
		}

		endTime, err := appt.EndTime()
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: %v", ErrMalformedTime, appt.ID, err)
		}

		conflicts = append(conflicts, ConflictingAppointment{
			AppointmentID: appt.ID,
			Reference:     appt.Reference,
			StartTime:     appt.StartTime,
			EndTime:       endTime,
		})
	}

	return conflicts, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrMalformedTime, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrMalformedTime, err)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if req.Kind != domain.BlockKindBlocking && req.Kind != domain.BlockKindAvailable {
		return fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, domain.BlockKindBlocking, domain.BlockKindAvailable)
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
