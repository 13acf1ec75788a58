package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
	staffRepo "github.com/m04kA/SPS-SchedulingService/internal/infra/storage/staff"
	"github.com/m04kA/SPS-SchedulingService/internal/service/schedule/models"
	"github.com/m04kA/SPS-SchedulingService/pkg/types"
)

// Service сервис для работы с недельными шаблонами и исключениями расписания.
//
// Исключения на конкретные даты сохраняются и редактируются, но расчёт
// доступности их не читает - он работает только по недельному шаблону
type Service struct {
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// GetSchedule получает недельный шаблон мастера
func (s *Service) GetSchedule(ctx context.Context, staffID int64) (*models.ScheduleResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}

	schedule, err := s.staffRepo.GetSchedule(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("GetSchedule: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("GetSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(staffID, schedule), nil
}

// UpdateSchedule заменяет недельный шаблон мастера целиком
func (s *Service) UpdateSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}

	schedule, err := req.ToDomain()
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			s.logger.Warn("UpdateSchedule: invalid time range for staff id=%d", staffID)
			return nil, ErrInvalidTimeRange
		}
		s.logger.Warn("UpdateSchedule: invalid schedule for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Убеждаемся, что мастер существует, до записи шаблона
	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateSchedule: staff id=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	if err := s.staffRepo.UpdateSchedule(ctx, staffID, schedule); err != nil {
		s.logger.Error("UpdateSchedule: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for staff id=%d", staffID)
	return models.FromDomainSchedule(staffID, schedule), nil
}

// ListOverrides получает исключения мастера за период
func (s *Service) ListOverrides(ctx context.Context, staffID int64, from, to time.Time) (*models.OverrideListResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}
	if from.IsZero() || to.IsZero() || to.Before(from) {
		return nil, fmt.Errorf("%w: period is invalid", ErrInvalidInput)
	}

	overrides, err := s.staffRepo.ListOverrides(ctx, staffID, from, to)
	if err != nil {
		s.logger.Error("ListOverrides: repository error for staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

// UpsertOverride устанавливает исключение на дату: одно исключение на
// пару (мастер, дата), повторная запись заменяет предыдущую
func (s *Service) UpsertOverride(ctx context.Context, staffID int64, req *models.UpsertOverrideRequest) error {
	if staffID <= 0 {
		return fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	override := &domain.ScheduleOverride{
		StaffID: staffID,
		Date:    req.Date,
		Enabled: req.Enabled,
	}

	if req.Enabled {
		start, err := types.NewTimeStringFromString(req.Start)
		if err != nil {
			return fmt.Errorf("%w: invalid start time", ErrInvalidInput)
		}
		end, err := types.NewTimeStringFromString(req.End)
		if err != nil {
			return fmt.Errorf("%w: invalid end time", ErrInvalidInput)
		}
		if !start.IsBefore(end) {
			return ErrInvalidTimeRange
		}
		override.Start = start
		override.End = end
	}

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("UpsertOverride: staff id=%d not found", staffID)
			return ErrStaffNotFound
		}
		s.logger.Error("UpsertOverride: repository error for staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	if err := s.staffRepo.UpsertOverride(ctx, override); err != nil {
		s.logger.Error("UpsertOverride: repository error for staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertOverride: saved override for staff id=%d date=%s", staffID, req.Date.Format(domain.DateFormat))
	return nil
}
