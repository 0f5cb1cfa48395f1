// Package termnotify prints job lifecycle transitions to the terminal.
package termnotify

import (
	"fmt"
	"io"
	"time"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/present"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
)

type TerminalNotifier struct {
	w         io.Writer
	renderer  *present.Renderer
	startedAt time.Time
}

func New(w io.Writer, theme string) *TerminalNotifier {
	return &TerminalNotifier{
		w:        w,
		renderer: present.NewRenderer(w, theme),
	}
}

func (t *TerminalNotifier) JobQueued(jobID string, req reqbuild.ExecutionRequest) {
	t.startedAt = time.Now()
	fmt.Fprintf(t.w, "== Submission queued (problem %d, %s, job %s) ==\n",
		req.ProblemID, req.Language.Label(), jobID)
}

func (t *TerminalNotifier) JobRunning(jobID string) {
	fmt.Fprintln(t.w, "-- Judging --")
}

func (t *TerminalNotifier) JobDone(jobID string, result api.JobResult) {
	dur := time.Since(t.startedAt).Round(time.Millisecond)
	fmt.Fprintf(t.w, "== Finished in %s ==\n", dur)
	t.renderer.Render(present.FromResult(result))
}

func (t *TerminalNotifier) JobFailed(jobID string, detail string) {
	dur := time.Since(t.startedAt).Round(time.Millisecond)
	fmt.Fprintf(t.w, "== Failed after %s ==\n", dur)
	t.renderer.Render(present.FromFailure(detail))
}
