package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultAttempts     = 3
	defaultBackoffBase  = time.Second
	defaultMaxBackoff   = 5 * time.Minute
	defaultPollInterval = time.Second
)

type entry[T any] struct {
	id           string
	payload      T
	opts         JobOptions
	maxAttempts  int
	status       Status
	attemptsMade int
	progress     int
	returnValue  any
	failedReason string
	createdAt    time.Time
	runAt        time.Time
	finishedAt   time.Time
	seq          uint64

	// run identifies the current activation; stale completions are dropped.
	run     uint64
	cancel  context.CancelFunc
	removed bool
}

// Queue is an in-process at-least-once job queue with bounded concurrency.
type Queue[T any] struct {
	name    string
	handler Handler[T]
	opts    Options
	logger  *slog.Logger

	mu         sync.Mutex
	jobs       map[string]*entry[T]
	seq        uint64
	running    int
	activeKeys map[string]struct{}
	paused     bool
	closed     bool
	started    bool

	wake   chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New[T any](name string, handler Handler[T], opts Options, logger *slog.Logger) *Queue[T] {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = 1
	}
	if opts.Attempts <= 0 {
		opts.Attempts = defaultAttempts
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	if opts.MaxBackoff <= 0 {
		opts.MaxBackoff = max(defaultMaxBackoff, opts.BackoffBase)
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Queue[T]{
		name:       name,
		handler:    handler,
		opts:       opts,
		logger:     logger.With("queue", name),
		jobs:       make(map[string]*entry[T]),
		activeKeys: make(map[string]struct{}),
		wake:       make(chan struct{}, 1),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (q *Queue[T]) Name() string {
	return q.name
}

// Start launches the dispatcher. Jobs added before Start wait for it.
func (q *Queue[T]) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.started || q.closed {
		return
	}
	q.started = true

	q.wg.Add(1)
	go q.loop()

	q.logger.Info("queue started",
		"max_parallel", q.opts.MaxParallel,
		"attempts", q.opts.Attempts,
	)
}

func (q *Queue[T]) Add(_ context.Context, payload T, opts JobOptions) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return "", ErrClosed
	}

	id := uuid.NewString()
	if opts.Repeat > 0 {
		if opts.Key == "" {
			return "", ErrRepeatNeedKey
		}
		id = repeatID(q.name, opts.Key)
		if cur, ok := q.jobs[id]; ok && !cur.removed && cur.status != StatusCompleted && cur.status != StatusFailed {
			return id, nil
		}
	}

	maxAttempts := opts.Attempts
	if maxAttempts <= 0 {
		maxAttempts = q.opts.Attempts
	}

	now := time.Now()
	q.seq++
	e := &entry[T]{
		id:          id,
		payload:     payload,
		opts:        opts,
		maxAttempts: maxAttempts,
		status:      StatusWaiting,
		createdAt:   now,
		runAt:       now,
		seq:         q.seq,
	}

	delay := opts.Delay
	if delay <= 0 && opts.Repeat > 0 {
		delay = opts.Repeat
	}
	if delay > 0 {
		e.status = StatusDelayed
		e.runAt = now.Add(delay)
	}

	q.jobs[id] = e
	q.signal()

	q.logger.Debug("job added", "job_id", id, "status", e.status, "delay", delay)
	return id, nil
}

func (q *Queue[T]) Status(id string) JobStatus {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.jobs[id]
	if !ok {
		return JobStatus{ID: id, Status: StatusNotFound}
	}

	return JobStatus{
		ID:           e.id,
		Status:       e.status,
		Progress:     e.progress,
		AttemptsMade: e.attemptsMade,
		Timestamp:    e.createdAt,
		FailedReason: e.failedReason,
		ReturnValue:  e.returnValue,
	}
}

// Remove deletes a job that is not currently running.
func (q *Queue[T]) Remove(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.jobs[id]
	if !ok || e.status == StatusActive {
		return false
	}
	delete(q.jobs, id)
	return true
}

// Schedule moves a job that is not running to delayed, due after delay.
func (q *Queue[T]) Schedule(id string, delay time.Duration) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.jobs[id]
	if !ok || e.status == StatusActive {
		return false
	}

	if e.status == StatusCompleted || e.status == StatusFailed {
		e.attemptsMade = 0
		e.failedReason = ""
		e.finishedAt = time.Time{}
	}
	e.status = StatusDelayed
	e.runAt = time.Now().Add(delay)
	q.signal()
	return true
}

// Interrupt forces a pending or running job to failed.
func (q *Queue[T]) Interrupt(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.jobs[id]
	if !ok || e.status == StatusCompleted || e.status == StatusFailed {
		return false
	}

	if e.cancel != nil {
		e.cancel()
	}
	e.status = StatusFailed
	e.failedReason = interruptedReason
	e.finishedAt = time.Now()

	q.logger.Warn("job interrupted", "job_id", id)
	return true
}

// RemoveWhere removes every job whose payload matches. Running jobs are
// dropped once their current run ends.
func (q *Queue[T]) RemoveWhere(match func(T) bool) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	removed := 0
	for id, e := range q.jobs {
		if e.removed || !match(e.payload) {
			continue
		}
		if e.status == StatusActive {
			e.removed = true
		} else {
			delete(q.jobs, id)
		}
		removed++
	}
	return removed
}

// Clean purges completed and failed jobs that finished more than grace ago.
func (q *Queue[T]) Clean(grace time.Duration) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	cutoff := time.Now().Add(-grace)
	cleaned := 0
	for id, e := range q.jobs {
		if e.status != StatusCompleted && e.status != StatusFailed {
			continue
		}
		if e.finishedAt.Before(cutoff) {
			delete(q.jobs, id)
			cleaned++
		}
	}
	return cleaned
}

func (q *Queue[T]) Pause() {
	q.mu.Lock()
	q.paused = true
	q.mu.Unlock()
	q.logger.Info("queue paused")
}

func (q *Queue[T]) Resume() {
	q.mu.Lock()
	q.paused = false
	q.signal()
	q.mu.Unlock()
	q.logger.Info("queue resumed")
}

func (q *Queue[T]) Counts() map[Status]int {
	q.mu.Lock()
	defer q.mu.Unlock()

	counts := map[Status]int{
		StatusWaiting:   0,
		StatusDelayed:   0,
		StatusActive:    0,
		StatusCompleted: 0,
		StatusFailed:    0,
	}
	for _, e := range q.jobs {
		counts[e.status]++
	}
	return counts
}

// Close stops dispatching and cancels running handlers. Their results are
// discarded. Close waits for the handlers to return.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.cancel()
	q.wg.Wait()

	q.logger.Info("queue closed")
}

func (q *Queue[T]) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *Queue[T]) loop() {
	defer q.wg.Done()

	timer := time.NewTimer(q.opts.PollInterval)
	defer timer.Stop()

	for {
		timer.Reset(q.dispatch())

		select {
		case <-q.ctx.Done():
			return
		case <-q.wake:
		case <-timer.C:
		}
	}
}

// dispatch starts every ready job that fits and returns how long to sleep
// before the next delayed job is due.
func (q *Queue[T]) dispatch() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()

	wait := q.opts.PollInterval
	if q.paused || q.closed {
		return wait
	}

	now := time.Now()
	var ready []*entry[T]
	for _, e := range q.jobs {
		switch e.status {
		case StatusDelayed:
			if e.runAt.After(now) {
				if d := e.runAt.Sub(now); d < wait {
					wait = d
				}
				continue
			}
			e.status = StatusWaiting
			ready = append(ready, e)
		case StatusWaiting:
			ready = append(ready, e)
		}
	}

	sort.Slice(ready, func(i, j int) bool {
		a, b := ready[i], ready[j]
		if a.opts.Priority != b.opts.Priority {
			return a.opts.Priority < b.opts.Priority
		}
		if !a.runAt.Equal(b.runAt) {
			return a.runAt.Before(b.runAt)
		}
		return a.seq < b.seq
	})

	for _, e := range ready {
		if q.running >= q.opts.MaxParallel {
			break
		}
		if e.opts.Key != "" {
			if _, busy := q.activeKeys[e.opts.Key]; busy {
				continue
			}
		}
		q.start(e)
	}

	return wait
}

// start must be called with mu held.
func (q *Queue[T]) start(e *entry[T]) {
	ctx, cancel := context.WithCancel(q.ctx)

	e.status = StatusActive
	e.run++
	e.cancel = cancel
	q.running++
	if e.opts.Key != "" {
		q.activeKeys[e.opts.Key] = struct{}{}
	}

	run := e.run
	job := Job[T]{
		ID:           e.id,
		Queue:        q.name,
		Payload:      e.payload,
		AttemptsMade: e.attemptsMade,
		CreatedAt:    e.createdAt,
		progress: func(p int) {
			q.mu.Lock()
			if e.run == run {
				e.progress = p
			}
			q.mu.Unlock()
		},
	}

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		defer cancel()

		result, err := q.execute(ctx, job)
		q.finish(e, run, result, err)
	}()
}

func (q *Queue[T]) execute(ctx context.Context, job Job[T]) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return q.handler(ctx, job)
}

func (q *Queue[T]) finish(e *entry[T], run uint64, result any, err error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	defer q.signal()

	q.running--
	if e.opts.Key != "" {
		delete(q.activeKeys, e.opts.Key)
	}
	e.cancel = nil

	if q.closed || e.run != run || e.status != StatusActive {
		return
	}
	if cur, ok := q.jobs[e.id]; !ok || cur != e {
		return
	}
	if e.removed {
		delete(q.jobs, e.id)
		return
	}

	now := time.Now()

	if err == nil {
		e.returnValue = result
		e.failedReason = ""
		if q.rearm(e, result, now) {
			return
		}
		e.status = StatusCompleted
		e.finishedAt = now
		q.logger.Debug("job completed", "job_id", e.id)
		return
	}

	e.attemptsMade++
	e.failedReason = err.Error()

	if e.attemptsMade < e.maxAttempts && !IsPermanent(err) {
		backoff := q.backoff(e.attemptsMade)
		e.status = StatusDelayed
		e.runAt = now.Add(backoff)
		q.logger.Warn("job failed, retrying",
			"job_id", e.id,
			"attempt", e.attemptsMade,
			"backoff", backoff,
			"error", err,
		)
		return
	}

	q.logger.Error("job failed",
		"job_id", e.id,
		"attempts", e.attemptsMade,
		"error", err,
	)

	if e.opts.Repeat > 0 {
		e.attemptsMade = 0
		e.status = StatusDelayed
		e.runAt = now.Add(e.opts.Repeat)
		return
	}

	e.status = StatusFailed
	e.finishedAt = now
}

// rearm schedules the next tick of a repeatable job after a successful run.
func (q *Queue[T]) rearm(e *entry[T], result any, now time.Time) bool {
	if e.opts.Repeat <= 0 {
		return false
	}
	if s, ok := result.(RepeatStopper); ok && s.StopRepeat() {
		return false
	}

	delay := e.opts.Repeat
	if d, ok := result.(RepeatDelayer); ok && d.RepeatDelay() > 0 {
		delay = d.RepeatDelay()
	}

	e.attemptsMade = 0
	e.status = StatusDelayed
	e.runAt = now.Add(delay)
	return true
}

func (q *Queue[T]) backoff(attempt int) time.Duration {
	backoff := min(q.opts.BackoffBase, q.opts.MaxBackoff)
	for i := 1; i < attempt; i++ {
		if backoff >= q.opts.MaxBackoff/2 {
			return q.opts.MaxBackoff
		}
		backoff *= 2
	}
	return backoff
}
