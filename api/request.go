package api

// RunRequest is the body of POST /api/run: an immediate, non-judged
// execution against user-supplied stdin.
type RunRequest struct {
	UserID   string `json:"user_id"`
	Language string `json:"language"`
	Code     string `json:"code"`
	Stdin    string `json:"stdin"`
}

// SubmitRequest is the body of POST /api/submit: a judged evaluation
// tracked as a job.
type SubmitRequest struct {
	UserID    string `json:"user_id"`
	ProblemID int    `json:"problem_id"`
	Language  string `json:"language"`
	Code      string `json:"code"`
}
