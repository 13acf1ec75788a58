package check_block_conflict

import (
	"context"

	checkBlockConflict "github.com/m04kA/SPS-SchedulingService/internal/usecase/check_block_conflict"
)

type CheckBlockConflictUseCase interface {
	Execute(ctx context.Context, req *checkBlockConflict.Request) (*checkBlockConflict.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
