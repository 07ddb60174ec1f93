package get_schedule

import (
	"context"

	computeSchedule "github.com/m04kA/SMC-ScheduleService/internal/usecase/compute_schedule"
)

type ComputeScheduleUseCase interface {
	Execute(ctx context.Context, req *computeSchedule.Request) (*computeSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
