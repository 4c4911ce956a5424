package service

import (
	"errors"
	"fmt"

	"modsync/internal/queue"
	"modsync/internal/source/reddit"
	"modsync/internal/storage/postgres"
)

var ErrInvalidCommunityName = errors.New("invalid community name")

// PersistenceError is a statement the database rejected for its data, other
// than the uniqueness conflict absorbed by inserts. Jobs do not retry it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// persistenceError leaves transient store failures to the queue's retry
// policy.
func persistenceError(op string, err error) error {
	if postgres.IsPermanent(err) {
		return queue.Permanent(&PersistenceError{Op: op, Err: err})
	}
	return fmt.Errorf("%s: %w", op, err)
}

// upstreamError leaves transport and HTTP errors to the queue's retry policy.
// Malformed responses will not improve on retry.
func upstreamError(err error) error {
	var decodeErr *reddit.DecodeError
	if errors.As(err, &decodeErr) {
		return queue.Permanent(fmt.Errorf("fetch page: %w", err))
	}
	return fmt.Errorf("fetch page: %w", err)
}

// retryable reports whether a failed fetch can succeed on a later attempt.
// Client errors are still retried until the job runs out of attempts.
func retryable(err error) bool {
	var upErr *reddit.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Retryable()
	}
	var decodeErr *reddit.DecodeError
	return !errors.As(err, &decodeErr)
}
