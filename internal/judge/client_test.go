package judge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/judge"
)

func TestProblemsAttachesUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/problems", r.URL.Path)
		require.Equal(t, "alice", r.URL.Query().Get("user_id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"problems":[{"id":1,"title":"A"},{"id":2,"title":"B"}]}`))
	}))
	defer srv.Close()

	c := judge.New(srv.URL, "alice")
	got, err := c.Problems(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "A", got[0].Title)
}

func TestRunFillsUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/run", r.URL.Path)
		var body api.RunRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "unknown", body.UserID)
		require.Equal(t, "print(1)", body.Code)
		json.NewEncoder(w).Encode(api.RunResponse{Output: "1\n", Verdict: "OK"})
	}))
	defer srv.Close()

	c := judge.New(srv.URL, "unknown")
	resp, err := c.Run(context.Background(), api.RunRequest{Language: "py", Code: "print(1)"})
	require.NoError(t, err)
	require.Equal(t, "1\n", resp.Output)
}

func TestSubmitAndJobRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/submit":
			json.NewEncoder(w).Encode(map[string]any{"ok": true, "job_id": "j-1"})
		case "/api/job/j-1":
			json.NewEncoder(w).Encode(map[string]any{
				"status": "done",
				"result": map[string]string{"output": "42", "verdict": "AC"},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := judge.New(srv.URL, "alice")
	sub, err := c.Submit(context.Background(), api.SubmitRequest{ProblemID: 3, Language: "cpp", Code: "..."})
	require.NoError(t, err)
	require.Equal(t, api.FlexID("j-1"), sub.JobID)

	job, err := c.Job(context.Background(), "j-1")
	require.NoError(t, err)
	require.Equal(t, api.JobDone, job.Status)
	require.NotNil(t, job.Result)
	require.Equal(t, "AC", job.Result.Verdict)
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"ok":false,"error":"Problem not found"}`))
	}))
	defer srv.Close()

	c := judge.New(srv.URL, "alice")
	_, err := c.Job(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *judge.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "Problem not found", apiErr.Message)
}
