// Package lifecycle drives a judged submission from the submit call to a
// terminal state. The controller submits, receives an opaque job id and
// polls the judge until the job finishes, raising one notification per
// state change. Starting a new submission supersedes the previous job:
// its poll loop detects on the next tick that it is stale and exits
// without touching shared state, so a late poll response can never
// clobber a newer submission.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/notify"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
)

// State is the controller's lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateQueued  State = "queued"
	StateRunning State = "running"
	StateDone    State = "done"
	StateError   State = "error"
)

// Terminal reports whether no further transitions occur.
func (s State) Terminal() bool {
	return s == StateDone || s == StateError
}

var (
	// ErrSubmitRejected means the judge accepted the call but returned
	// no tracking identifier.
	ErrSubmitRejected = errors.New("judge returned no job id")
	// ErrJobTimeout means the job did not reach a terminal state within
	// the wall-clock budget.
	ErrJobTimeout = errors.New("job timed out")
)

// JudgeAPI is the slice of the judge client the controller depends on.
type JudgeAPI interface {
	Submit(ctx context.Context, req api.SubmitRequest) (api.SubmitResponse, error)
	Job(ctx context.Context, jobID string) (api.JobResponse, error)
}

const (
	defaultPollInterval    = 900 * time.Millisecond
	defaultJobTimeout      = 2 * time.Minute
	defaultMaxPollFailures = 5
)

// Controller is the job lifecycle state machine. At most one job is live
// at a time; the most recent submission is authoritative.
type Controller struct {
	judge           JudgeAPI
	notifier        notify.Notifier
	logger          *slog.Logger
	pollInterval    time.Duration
	jobTimeout      time.Duration
	maxPollFailures int

	mu        sync.Mutex
	state     State
	jobID     string
	result    *api.JobResult
	errDetail string
}

// Option configures a Controller.
type Option func(*Controller)

// WithPollInterval sets the delay between poll ticks.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) { c.pollInterval = d }
}

// WithJobTimeout sets the wall-clock budget for a job to reach a terminal
// state.
func WithJobTimeout(d time.Duration) Option {
	return func(c *Controller) { c.jobTimeout = d }
}

// WithMaxPollFailures sets how many consecutive transport failures are
// tolerated before the job is declared failed.
func WithMaxPollFailures(n int) Option {
	return func(c *Controller) { c.maxPollFailures = n }
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

func NewController(j JudgeAPI, n notify.Notifier, opts ...Option) *Controller {
	c := &Controller{
		judge:           j,
		notifier:        n,
		logger:          slog.Default(),
		pollInterval:    defaultPollInterval,
		jobTimeout:      defaultJobTimeout,
		maxPollFailures: defaultMaxPollFailures,
		state:           StateIdle,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Ticket tracks one submission. Done is closed when its poll loop exits,
// either because the job reached a terminal state or because a newer
// submission superseded it.
type Ticket struct {
	JobID string
	done  chan struct{}
}

// Done returns a channel closed when the submission's poll loop exits.
func (t *Ticket) Done() <-chan struct{} { return t.done }

// Snapshot is the externally visible controller state.
type Snapshot struct {
	State     State
	JobID     string
	Result    *api.JobResult
	ErrDetail string
}

// Snapshot returns the current lifecycle state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:     c.state,
		JobID:     c.jobID,
		Result:    c.result,
		ErrDetail: c.errDetail,
	}
}

// Submit issues the judged request and starts the polling loop. A
// transport failure aborts this one action and leaves the previous state
// untouched so the user can retry. A response without a job id fails with
// ErrSubmitRejected.
func (c *Controller) Submit(ctx context.Context, req reqbuild.ExecutionRequest) (*Ticket, error) {
	resp, err := c.judge.Submit(ctx, api.SubmitRequest{
		ProblemID: req.ProblemID,
		Language:  string(req.Language),
		Code:      req.Code,
	})
	if err != nil {
		return nil, fmt.Errorf("submit call failed: %w", err)
	}
	jobID := string(resp.JobID)
	if jobID == "" {
		return nil, ErrSubmitRejected
	}

	t := &Ticket{JobID: jobID, done: make(chan struct{})}

	c.mu.Lock()
	c.jobID = jobID // supersedes any live job
	c.state = StateQueued
	c.result = nil
	c.errDetail = ""
	c.notifier.JobQueued(jobID, req)
	c.mu.Unlock()

	go c.poll(ctx, jobID, t)
	return t, nil
}

// poll is the self-rescheduling loop for one job: one round trip per
// tick, never two in flight. It captures jobID at start and re-checks it
// against the authoritative id before every mutation.
func (c *Controller) poll(ctx context.Context, jobID string, t *Ticket) {
	defer close(t.done)

	deadline := time.Now().Add(c.jobTimeout)
	failures := 0
	timer := time.NewTimer(c.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("poll loop canceled", "job_id", jobID)
			return
		case <-timer.C:
		}

		if !c.isCurrent(jobID) {
			c.logger.Debug("poll loop superseded", "job_id", jobID)
			return
		}
		if time.Now().After(deadline) {
			c.transitionError(jobID, ErrJobTimeout.Error())
			return
		}

		resp, err := c.judge.Job(ctx, jobID)
		if err != nil {
			// Transport failures are retried on the next tick.
			failures++
			c.logger.Warn("poll failed", "job_id", jobID, "attempt", failures, "error", err)
			if failures >= c.maxPollFailures {
				c.transitionError(jobID, fmt.Sprintf("judge unreachable: %v", err))
				return
			}
			timer.Reset(c.pollInterval)
			continue
		}
		failures = 0

		switch resp.Status {
		case api.JobDone:
			var result api.JobResult
			if resp.Result != nil {
				result = *resp.Result
			}
			c.transitionDone(jobID, result)
			return
		case api.JobError:
			detail := resp.Error
			if detail == "" {
				detail = "job failed"
			}
			c.transitionError(jobID, detail)
			return
		default:
			// Anything non-terminal, known or not, counts as running so
			// an unexpected status cannot stall the client.
			c.transitionRunning(jobID)
		}

		timer.Reset(c.pollInterval)
	}
}

func (c *Controller) isCurrent(jobID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.jobID == jobID
}

func (c *Controller) transitionRunning(jobID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.jobID != jobID || c.state.Terminal() {
		return
	}
	if c.state != StateRunning {
		c.state = StateRunning
		c.notifier.JobRunning(jobID)
	}
}

func (c *Controller) transitionDone(jobID string, result api.JobResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.jobID != jobID || c.state.Terminal() {
		return
	}
	c.state = StateDone
	c.result = &result
	c.notifier.JobDone(jobID, result)
}

func (c *Controller) transitionError(jobID string, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.jobID != jobID || c.state.Terminal() {
		return
	}
	c.state = StateError
	c.errDetail = detail
	c.notifier.JobFailed(jobID, detail)
}
