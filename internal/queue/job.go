package queue

import (
	"context"
	"errors"
	"time"
)

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusDelayed   Status = "delayed"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusNotFound  Status = "not_found"
)

const interruptedReason = "job interrupted"

var (
	ErrClosed        = errors.New("queue closed")
	ErrRepeatNeedKey = errors.New("repeatable job requires a key")
)

// Handler processes one job. The returned value is recorded on success.
type Handler[T any] func(ctx context.Context, job Job[T]) (any, error)

// Job is the view of a queued job handed to a Handler.
type Job[T any] struct {
	ID           string
	Queue        string
	Payload      T
	AttemptsMade int
	CreatedAt    time.Time

	progress func(int)
}

// UpdateProgress records handler progress, visible through Status.
func (j Job[T]) UpdateProgress(p int) {
	if j.progress != nil {
		j.progress(p)
	}
}

type Options struct {
	MaxParallel  int
	Attempts     int
	BackoffBase  time.Duration
	MaxBackoff   time.Duration
	PollInterval time.Duration
}

type JobOptions struct {
	Delay    time.Duration
	Attempts int
	// Priority orders ready jobs, lower first.
	Priority int
	// Jobs sharing a non-empty Key never run concurrently.
	Key string
	// Repeat re-arms the job this long after every run.
	Repeat time.Duration
}

type JobStatus struct {
	ID           string
	Status       Status
	Progress     int
	AttemptsMade int
	Timestamp    time.Time
	FailedReason string
	ReturnValue  any
}

// RepeatDelayer overrides the delay before the next run of a repeatable job.
type RepeatDelayer interface {
	RepeatDelay() time.Duration
}

// RepeatStopper ends a repeatable job after the current run.
type RepeatStopper interface {
	StopRepeat() bool
}

type permanentError struct {
	err error
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

func repeatID(queue, key string) string {
	return "repeat:" + queue + ":" + key
}
