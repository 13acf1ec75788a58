package get_staff_blocks

import (
	"context"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/service/blocks/models"
)

type BlockService interface {
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*models.BlockListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
