// Package natsnotify publishes job lifecycle events to a NATS subject so
// external tooling can follow submissions live.
package natsnotify

import (
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/present"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
)

type NatsNotifier struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
}

func New(nc *nats.Conn, subject string, logger *slog.Logger) *NatsNotifier {
	return &NatsNotifier{nc: nc, subject: subject, logger: logger}
}

func (n *NatsNotifier) JobQueued(jobID string, req reqbuild.ExecutionRequest) {
	n.send(api.NewEnqueueJob(jobID, req.Uuid, req.ProblemID, string(req.Language)))
}

func (n *NatsNotifier) JobRunning(jobID string) {
	n.send(api.NewStartJob(jobID))
}

func (n *NatsNotifier) JobDone(jobID string, result api.JobResult) {
	output := present.TrimToRect(result.Output, api.MaxOutputHeight, api.MaxOutputWidth)
	n.send(api.NewFinishJob(jobID, result.Verdict, output))
}

func (n *NatsNotifier) JobFailed(jobID string, detail string) {
	n.send(api.NewFailJob(jobID, detail))
}

func (n *NatsNotifier) send(msg any) {
	b, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("failed to marshal lifecycle event", "error", err)
		return
	}
	if err := n.nc.Publish(n.subject, b); err != nil {
		// Event sinks are best-effort; never fail the submission.
		n.logger.Warn("failed to publish lifecycle event", "error", err)
	}
}
