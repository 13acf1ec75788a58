package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// StaffRepository интерфейс репозитория мастеров и их расписаний
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetSchedule(ctx context.Context, staffID int64) (domain.WeeklySchedule, error)
	UpdateSchedule(ctx context.Context, staffID int64, schedule domain.WeeklySchedule) error
	ListOverrides(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.ScheduleOverride, error)
	UpsertOverride(ctx context.Context, override *domain.ScheduleOverride) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
