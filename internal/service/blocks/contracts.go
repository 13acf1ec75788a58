package blocks

import (
	"context"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Block, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
