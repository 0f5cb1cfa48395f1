// Package reqbuild assembles execution requests from the current session
// state. Pure validation plus assembly; no network access happens here.
package reqbuild

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/mashrafi141/my-judge-webapp2/internal/editor"
	"github.com/mashrafi141/my-judge-webapp2/internal/session"
)

var (
	// ErrEmptySource means there is nothing to run or submit.
	ErrEmptySource = errors.New("source text is empty")
	// ErrNoProblemSelected means a submit was attempted without a target.
	ErrNoProblemSelected = errors.New("no problem selected")
)

// Mode distinguishes an immediate run from a judged submission.
type Mode string

const (
	ModeRun    Mode = "run"
	ModeSubmit Mode = "submit"
)

// ExecutionRequest is a value object assembled fresh per user action.
// Uuid is client-generated and used only for log correlation.
type ExecutionRequest struct {
	Uuid     string
	Mode     Mode
	Language editor.Language
	Code     string

	// Stdin is set for run requests only.
	Stdin string
	// ProblemID is set for submit requests only.
	ProblemID int
}

// BuildRun assembles a run request from the session. Fails with
// ErrEmptySource when the source text is empty or whitespace-only.
func BuildRun(sess *session.Session) (ExecutionRequest, error) {
	code := sess.Text()
	if strings.TrimSpace(code) == "" {
		return ExecutionRequest{}, ErrEmptySource
	}
	return ExecutionRequest{
		Uuid:     uuid.NewString(),
		Mode:     ModeRun,
		Language: sess.Language(),
		Code:     code,
		Stdin:    sess.Stdin(),
	}, nil
}

// BuildSubmit assembles a submit request from the session. The empty
// source check applies regardless of problem selection.
func BuildSubmit(sess *session.Session) (ExecutionRequest, error) {
	code := sess.Text()
	if strings.TrimSpace(code) == "" {
		return ExecutionRequest{}, ErrEmptySource
	}
	selected := sess.Selected()
	if selected == nil {
		return ExecutionRequest{}, ErrNoProblemSelected
	}
	return ExecutionRequest{
		Uuid:      uuid.NewString(),
		Mode:      ModeSubmit,
		Language:  sess.Language(),
		Code:      code,
		ProblemID: selected.ID,
	}, nil
}
