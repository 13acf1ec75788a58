package get_schedule_overrides

import (
	"context"
	"time"

	"github.com/m04kA/SPS-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOverrides(ctx context.Context, staffID int64, from, to time.Time) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
