package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	// GetByID получает мастера вместе с недельным шаблоном расписания
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByDate получает записи мастера на дату (без отменённых)
	GetByDate(ctx context.Context, filter domain.DayAppointmentsFilter) ([]*domain.Appointment, error)
}

// BlockRepository интерфейс репозитория блоков
type BlockRepository interface {
	// GetByStaffAndDate получает все блоки мастера на дату
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Block, error)
}

// SettingsRepository интерфейс репозитория глобальных настроек
type SettingsRepository interface {
	// GetMinLeadTimeMinutes получает минимальное время до записи (минуты)
	GetMinLeadTimeMinutes(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
