package check_availability_batch

import (
	"context"

	checkAvailabilityBatch "github.com/kairodigital/KD-BookingService/internal/usecase/check_availability_batch"
)

type CheckAvailabilityBatchUseCase interface {
	Execute(ctx context.Context, req *checkAvailabilityBatch.Request) (*checkAvailabilityBatch.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
