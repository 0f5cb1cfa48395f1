// Package notify defines the observer interface for job lifecycle
// transitions. The controller raises exactly one notification per state
// change; sinks render to the terminal, log, or publish to a queue.
package notify

import (
	"log/slog"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
)

// Notifier observes job lifecycle transitions. Implementations must not
// call back into the lifecycle controller: notifications are delivered
// while the controller holds its state lock.
type Notifier interface {
	JobQueued(jobID string, req reqbuild.ExecutionRequest)
	JobRunning(jobID string)
	JobDone(jobID string, result api.JobResult)
	JobFailed(jobID string, detail string)
}

// Fanout delivers every notification to each sink in order.
type Fanout []Notifier

func (f Fanout) JobQueued(jobID string, req reqbuild.ExecutionRequest) {
	for _, n := range f {
		n.JobQueued(jobID, req)
	}
}

func (f Fanout) JobRunning(jobID string) {
	for _, n := range f {
		n.JobRunning(jobID)
	}
}

func (f Fanout) JobDone(jobID string, result api.JobResult) {
	for _, n := range f {
		n.JobDone(jobID, result)
	}
}

func (f Fanout) JobFailed(jobID string, detail string) {
	for _, n := range f {
		n.JobFailed(jobID, detail)
	}
}

// SlogNotifier logs every transition through the structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

func NewSlogNotifier(l *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: l}
}

func (s *SlogNotifier) JobQueued(jobID string, req reqbuild.ExecutionRequest) {
	s.logger.Info("job queued",
		"job_id", jobID,
		"submission_uuid", req.Uuid,
		"problem_id", req.ProblemID,
		"language", req.Language)
}

func (s *SlogNotifier) JobRunning(jobID string) {
	s.logger.Info("job running", "job_id", jobID)
}

func (s *SlogNotifier) JobDone(jobID string, result api.JobResult) {
	s.logger.Info("job done", "job_id", jobID, "verdict", result.Verdict)
}

func (s *SlogNotifier) JobFailed(jobID string, detail string) {
	s.logger.Error("job failed", "job_id", jobID, "detail", detail)
}
