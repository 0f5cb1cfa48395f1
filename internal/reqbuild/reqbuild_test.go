package reqbuild_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/editor"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
	"github.com/mashrafi141/my-judge-webapp2/internal/session"
)

func newSession() *session.Session {
	return session.New(editor.NewBuffer(), editor.LangPy)
}

func TestBuildRun(t *testing.T) {
	sess := newSession()
	sess.SetText("print(input())")
	sess.SetStdin("41")

	req, err := reqbuild.BuildRun(sess)
	require.NoError(t, err)
	require.Equal(t, reqbuild.ModeRun, req.Mode)
	require.Equal(t, editor.LangPy, req.Language)
	require.Equal(t, "print(input())", req.Code)
	require.Equal(t, "41", req.Stdin)
	require.NotEmpty(t, req.Uuid)
}

func TestBuildRunRejectsBlankSource(t *testing.T) {
	sess := newSession()
	sess.SetText("  \n\t ")

	_, err := reqbuild.BuildRun(sess)
	require.ErrorIs(t, err, reqbuild.ErrEmptySource)
}

func TestBuildSubmit(t *testing.T) {
	sess := newSession()
	sess.SetText("print(42)")
	sess.Select(&api.Problem{ID: 9})

	req, err := reqbuild.BuildSubmit(sess)
	require.NoError(t, err)
	require.Equal(t, reqbuild.ModeSubmit, req.Mode)
	require.Equal(t, 9, req.ProblemID)
}

func TestBuildSubmitRequiresSelection(t *testing.T) {
	sess := newSession()
	sess.SetText("print(42)")

	_, err := reqbuild.BuildSubmit(sess)
	require.ErrorIs(t, err, reqbuild.ErrNoProblemSelected)
}

func TestBuildSubmitEmptySourceWinsOverSelection(t *testing.T) {
	// Empty source fails the same way whether or not a problem is selected.
	sess := newSession()
	sess.SetText("")
	_, err := reqbuild.BuildSubmit(sess)
	require.ErrorIs(t, err, reqbuild.ErrEmptySource)

	sess.Select(&api.Problem{ID: 1})
	_, err = reqbuild.BuildSubmit(sess)
	require.ErrorIs(t, err, reqbuild.ErrEmptySource)
}
