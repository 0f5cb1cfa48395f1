// Package present maps terminal job results and immediate run results
// into a normalized verdict/output pair for display. Pure derivation; no
// network and no mutable state.
package present

import (
	"strings"

	"github.com/mashrafi141/my-judge-webapp2/api"
)

// Presentation is the normalized display form of any execution outcome.
type Presentation struct {
	Verdict string
	Output  string
}

// FromJob derives the presentation of a polled job response. An explicit
// verdict wins over the synthesized "ERROR"; structured output wins over
// raw error text.
func FromJob(resp api.JobResponse) Presentation {
	if resp.Status == api.JobError {
		return Presentation{Verdict: "ERROR", Output: resp.Error}
	}
	if resp.Result != nil {
		return FromResult(*resp.Result)
	}
	return Presentation{Verdict: string(resp.Status)}
}

// FromResult derives the presentation of a terminal job result.
func FromResult(res api.JobResult) Presentation {
	return Presentation{Verdict: res.Verdict, Output: res.Output}
}

// FromFailure derives the presentation of a job that ended in the error
// state with the given detail.
func FromFailure(detail string) Presentation {
	return Presentation{Verdict: "ERROR", Output: detail}
}

// FromRun derives the presentation of an immediate run. Output prefers
// stdout over stderr; the verdict falls back to "ERROR" when the run
// produced nothing but error text, and "OK" otherwise.
func FromRun(resp api.RunResponse) Presentation {
	out := resp.Output
	if out == "" {
		out = resp.Stderr
	}
	verdict := resp.Verdict
	if verdict == "" {
		if resp.Output == "" && resp.Stderr != "" {
			verdict = "ERROR"
		} else {
			verdict = "OK"
		}
	}
	return Presentation{Verdict: verdict, Output: out}
}

// TrimToRect cuts s to at most maxHeight lines of maxWidth characters,
// marking elisions with "...". Keeps verdict panels readable when a
// submission prints megabytes.
func TrimToRect(s string, maxHeight, maxWidth int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > maxHeight {
		lines = append(lines[:maxHeight], "...")
	}
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if len(line) > maxWidth {
			b.WriteString(line[:maxWidth])
			b.WriteString("...")
		} else {
			b.WriteString(line)
		}
	}
	return b.String()
}
