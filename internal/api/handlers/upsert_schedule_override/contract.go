package upsert_schedule_override

import (
	"context"

	"github.com/m04kA/SPS-SchedulingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertOverride(ctx context.Context, staffID int64, req *models.UpsertOverrideRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
