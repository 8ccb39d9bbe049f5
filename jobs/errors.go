package jobs

import "errors"

var (
	// ErrConnectorRequired is returned when an executor is created without a storage connector.
	ErrConnectorRequired = errors.New("storage connector required")

	// ErrQueueFull is returned when a submission exceeds the queue capacity.
	ErrQueueFull = errors.New("job queue is full")

	// ErrExecutorClosed is returned when submitting to a released executor.
	ErrExecutorClosed = errors.New("executor is closed")

	// ErrJobNotFound is returned when no job has the requested ID.
	ErrJobNotFound = errors.New("job not found")
)
