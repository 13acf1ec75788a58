package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// AppointmentRepository - контракт хранилища записей
type AppointmentRepository interface {
	GetByDate(ctx context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error)
}

// BlockRepository - контракт хранилища блокировок расписания
type BlockRepository interface {
	GetByDate(ctx context.Context, date time.Time, staffIDs []int64) ([]*domain.Block, error)
}

type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
