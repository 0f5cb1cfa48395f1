package api

import (
	"encoding/json"
	"strings"
)

// FlexID is an opaque identifier that the judge may issue either as a
// JSON string or as a number.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// RunResponse is the body of POST /api/run.
type RunResponse struct {
	Output  string `json:"output"`
	Stderr  string `json:"stderr"`
	Verdict string `json:"verdict"`
}

// SubmitResponse is the body of POST /api/submit. A missing job_id means
// the judge accepted the call but gave the client nothing to track.
type SubmitResponse struct {
	JobID FlexID `json:"job_id"`
}

// JobStatus is the externally reported status of a tracked job.
type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobError   JobStatus = "error"
)

// Terminal reports whether no further transitions can occur.
func (s JobStatus) Terminal() bool {
	return s == JobDone || s == JobError
}

// JobResult is present only when a job finished with status "done".
type JobResult struct {
	Output  string `json:"output"`
	Verdict string `json:"verdict"`
}

// JobResponse is the body of GET /api/job/{id}.
type JobResponse struct {
	Status JobStatus  `json:"status"`
	Result *JobResult `json:"result"`
	Error  string     `json:"error"`
}

// Profile is the body of GET /api/profile.
type Profile struct {
	Username        string `json:"username"`
	Gmail           string `json:"gmail"`
	Rating          int    `json:"rating"`
	TotalRating     int    `json:"total_rating"`
	SubmissionCount int    `json:"submission_count"`
	AcceptedIDs     []int  `json:"accepted_problems"`
}

// HistoryEntry is one element of GET /api/history.
type HistoryEntry struct {
	ProblemID   FlexID `json:"problem_id"`
	ProblemName string `json:"problem_name"`
	Verdict     string `json:"verdict"`
	Language    string `json:"lang"`
}

// RankingEntry is one element of GET /api/rankings.
type RankingEntry struct {
	Username string `json:"username"`
	Rating   int    `json:"rating"`
}
