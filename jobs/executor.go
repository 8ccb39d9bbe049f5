// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/polingest/core"
	"github.com/poiesic/polingest/ingestion"
	"github.com/poiesic/polingest/storage"
	"github.com/poiesic/polingest/tabular"
)

const (
	// MessageSucceeded is the terminal text of a successful job.
	MessageSucceeded = "file successfully processed"
	// MessageFailed is the terminal text of a failed job.
	MessageFailed = "unable to process file"

	defaultQueueSize = 64
)

// Message is the terminal notification of a job.
type Message struct {
	JobID string
	OK    bool
	Text  string
}

// Executor runs ingestion jobs on a bounded worker pool.
type Executor struct {
	connector  storage.Connector
	control    storage.Store // job status records outside of runs
	pipeline   *ingestion.Pipeline
	pool       *ants.Pool
	queue      chan *core.Job
	notify     func(Message)
	workers    int
	queueSize  int
	removeFile bool
	logger     *slog.Logger

	mu       sync.Mutex
	closed   bool
	done     chan struct{}
	inflight sync.WaitGroup
}

// Option configures an Executor.
type Option func(*Executor) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithNotify sets the callback receiving terminal messages. It runs on the
// worker goroutine and should return quickly.
// Default logs the message.
func WithNotify(notify func(Message)) Option {
	return func(e *Executor) error {
		e.notify = notify
		return nil
	}
}

// WithWorkers sets the number of jobs processed concurrently.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithWorkers(n int) Option {
	return func(e *Executor) error {
		if n < 1 {
			n = 1
		}
		e.workers = n
		return nil
	}
}

// WithQueueSize sets how many submitted jobs may wait for a worker.
// Default is 64, with a minimum of 1.
func WithQueueSize(n int) Option {
	return func(e *Executor) error {
		if n < 1 {
			n = 1
		}
		e.queueSize = n
		return nil
	}
}

// WithRemoveFile deletes each uploaded file once its job is finished.
func WithRemoveFile(remove bool) Option {
	return func(e *Executor) error {
		e.removeFile = remove
		return nil
	}
}

// WithPipeline sets the ingestion pipeline.
// Default is a pipeline in insert mode using the executor's logger.
func WithPipeline(p *ingestion.Pipeline) Option {
	return func(e *Executor) error {
		e.pipeline = p
		return nil
	}
}

// NewExecutor creates an executor and starts its dispatcher.
// Release must be called to stop it.
func NewExecutor(connector storage.Connector, opts ...Option) (*Executor, error) {
	if connector == nil {
		return nil, ErrConnectorRequired
	}

	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}

	e := &Executor{
		connector: connector,
		workers:   workers,
		queueSize: defaultQueueSize,
		logger:    slog.Default(),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	if e.pipeline == nil {
		p, err := ingestion.NewPipeline(ingestion.WithLogger(e.logger))
		if err != nil {
			return nil, err
		}
		e.pipeline = p
	}
	if e.notify == nil {
		e.notify = e.logMessage
	}

	pool, err := ants.NewPool(e.workers)
	if err != nil {
		return nil, err
	}
	control, err := connector.Connect(context.Background())
	if err != nil {
		pool.Release()
		return nil, err
	}

	e.pool = pool
	e.control = control
	e.queue = make(chan *core.Job, e.queueSize)
	go e.dispatch()
	return e, nil
}

// Submit records a pending job for the file at path and queues it.
// The format is taken from the file extension. The returned job is a
// snapshot; poll Job for later states.
func (e *Executor) Submit(path string) (*core.Job, error) {
	m := getMetrics()
	format, err := tabular.FormatFromPath(path)
	if err != nil {
		m.submitted.WithLabelValues("rejected").Inc()
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		m.submitted.WithLabelValues("rejected").Inc()
		return nil, ErrExecutorClosed
	}
	if len(e.queue) >= cap(e.queue) {
		m.submitted.WithLabelValues("queue_full").Inc()
		return nil, ErrQueueFull
	}

	job := &core.Job{
		Id:        uuid.NewString(),
		FilePath:  path,
		Format:    string(format),
		Status:    core.JobStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := e.control.Jobs().SaveJob(context.Background(), job); err != nil {
		m.submitted.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("save job: %w", err)
	}
	snapshot := *job

	// Only submitters send, under mu, so this cannot block.
	e.queue <- job
	m.submitted.WithLabelValues("accepted").Inc()
	m.queued.Inc()
	e.logger.Debug("job submitted", "job_id", job.Id, "path", path)
	return &snapshot, nil
}

// Job returns the stored status record of a job.
func (e *Executor) Job(ctx context.Context, id string) (*core.Job, error) {
	job, err := e.control.Jobs().LoadJob(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, id)
		}
		return nil, err
	}
	return job, nil
}

// Release stops accepting jobs, waits for queued and running jobs to
// finish, then releases the worker pool.
func (e *Executor) Release() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()

	<-e.done
	e.inflight.Wait()
	e.pool.Release()
	if err := e.control.Close(); err != nil {
		e.logger.Warn("error closing job store", "err", err)
	}
}

// dispatch hands queued jobs to the pool, blocking while every worker is busy.
func (e *Executor) dispatch() {
	defer close(e.done)
	m := getMetrics()

	for job := range e.queue {
		m.queued.Dec()
		e.inflight.Add(1)
		err := e.pool.Submit(func() {
			defer e.inflight.Done()
			e.run(job)
		})
		if err != nil {
			e.inflight.Done()
			e.complete(context.Background(), e.control, job, nil, fmt.Errorf("schedule job: %w", err))
		}
	}
}

// run processes one job with its own storage session.
func (e *Executor) run(job *core.Job) {
	m := getMetrics()
	m.running.Inc()
	defer m.running.Dec()

	ctx := context.Background()
	store, err := e.connector.Connect(ctx)
	if err != nil {
		e.complete(ctx, nil, job, nil, fmt.Errorf("connect storage: %w", err))
		return
	}
	defer store.Close()

	result, err := e.process(ctx, store, job)
	e.complete(ctx, store, job, result, err)
}

func (e *Executor) process(ctx context.Context, store storage.Store, job *core.Job) (result *ingestion.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ingestion panicked: %v", r)
		}
	}()

	job.Status = core.JobStatusRunning
	job.StartedAt = time.Now().UTC()
	if err := store.Jobs().SaveJob(ctx, job); err != nil {
		e.logger.Warn("error saving job status", "job_id", job.Id, "err", err)
	}

	return e.pipeline.IngestFile(ctx, store, job.FilePath, tabular.Format(job.Format))
}

// complete records the terminal status and emits the terminal message.
// store may be nil when no session could be opened.
func (e *Executor) complete(ctx context.Context, store storage.Store, job *core.Job, result *ingestion.Result, runErr error) {
	m := getMetrics()
	job.FinishedAt = time.Now().UTC()
	msg := Message{JobID: job.Id}

	if runErr != nil {
		job.Status = core.JobStatusFailed
		job.Error = runErr.Error()
		msg.Text = MessageFailed
		e.logger.Error("ingestion job failed", "job_id", job.Id, "path", job.FilePath, "err", runErr)
	} else {
		job.Status = core.JobStatusSucceeded
		job.Checksum = result.Checksum
		job.Counts = result.Counts()
		job.Gaps = result.Gaps
		msg.OK = true
		msg.Text = MessageSucceeded
		m.rows.Add(float64(job.Counts.Rows))
		m.gaps.Add(float64(len(job.Gaps)))
	}
	job.Message = msg.Text

	started := job.StartedAt
	if started.IsZero() {
		started = job.CreatedAt
	}
	m.finished.WithLabelValues(job.Status.String()).Inc()
	m.duration.WithLabelValues(job.Status.String()).Observe(job.FinishedAt.Sub(started).Seconds())

	if store == nil {
		store = e.control
	}
	if err := store.Jobs().SaveJob(ctx, job); err != nil {
		e.logger.Error("error saving job status", "job_id", job.Id, "err", err)
	}

	if e.removeFile {
		if err := os.Remove(job.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			e.logger.Warn("error removing uploaded file", "job_id", job.Id, "path", job.FilePath, "err", err)
		}
	}

	e.notify(msg)
}

func (e *Executor) logMessage(msg Message) {
	if msg.OK {
		e.logger.Info(msg.Text, "job_id", msg.JobID)
		return
	}
	e.logger.Warn(msg.Text, "job_id", msg.JobID)
}
