// Package judge is the HTTP client for the remote judging service. It
// covers the full compatibility surface the client consumes: the problem
// catalog, immediate runs, judged submissions and job polling, plus the
// read-only profile endpoints.
package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/mashrafi141/my-judge-webapp2/api"
)

// Client is the judge API client. The user identity is read once at
// startup and attached to every call as the user_id query parameter.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a judge client. baseURL is the root URL of the judge
// service; userID identifies the active user ("unknown" when absent).
func New(baseURL, userID string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userID:     userID,
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// UserID returns the identity attached to every call.
func (c *Client) UserID() string { return c.userID }

// Problems fetches and normalizes the problem catalog.
func (c *Client) Problems(ctx context.Context) ([]api.Problem, error) {
	body, err := c.get(ctx, "/api/problems")
	if err != nil {
		return nil, err
	}
	return api.DecodeProblems(body)
}

// Problem fetches a single problem by its numeric identifier.
func (c *Client) Problem(ctx context.Context, id int) (api.Problem, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/problem/%d", id))
	if err != nil {
		return api.Problem{}, err
	}
	var wrapped struct {
		Problem json.RawMessage `json:"problem"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil || wrapped.Problem == nil {
		return api.DecodeProblem(body)
	}
	return api.DecodeProblem(wrapped.Problem)
}

// Run executes code immediately against ad-hoc stdin. The active user id
// is filled in when the request does not carry one.
func (c *Client) Run(ctx context.Context, req api.RunRequest) (api.RunResponse, error) {
	if req.UserID == "" {
		req.UserID = c.userID
	}
	return doPost[api.RunResponse](ctx, c, "/api/run", req)
}

// Submit enqueues a judged evaluation and returns the judge's response.
// Whether an empty job id is acceptable is the caller's decision.
func (c *Client) Submit(ctx context.Context, req api.SubmitRequest) (api.SubmitResponse, error) {
	if req.UserID == "" {
		req.UserID = c.userID
	}
	return doPost[api.SubmitResponse](ctx, c, "/api/submit", req)
}

// Job queries the current status of a tracked job.
func (c *Client) Job(ctx context.Context, jobID string) (api.JobResponse, error) {
	return doGet[api.JobResponse](ctx, c, "/api/job/"+url.PathEscape(jobID))
}

// Profile fetches the active user's profile.
func (c *Client) Profile(ctx context.Context) (api.Profile, error) {
	type envelope struct {
		Profile api.Profile `json:"profile"`
	}
	env, err := doGet[envelope](ctx, c, "/api/profile")
	return env.Profile, err
}

// History fetches the active user's past submissions.
func (c *Client) History(ctx context.Context) ([]api.HistoryEntry, error) {
	type envelope struct {
		History []api.HistoryEntry `json:"history"`
	}
	env, err := doGet[envelope](ctx, c, "/api/history")
	return env.History, err
}

// Rankings fetches the leaderboard.
func (c *Client) Rankings(ctx context.Context) ([]api.RankingEntry, error) {
	type envelope struct {
		Rankings []api.RankingEntry `json:"rankings"`
	}
	env, err := doGet[envelope](ctx, c, "/api/rankings")
	return env.Rankings, err
}

// --- internal helpers ---

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("judge: marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	q.Set("user_id", c.userID)
	req.URL.RawQuery = q.Encode()
	return req, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp)
	}
	return io.ReadAll(resp.Body)
}

func doGet[T any](ctx context.Context, c *Client, path string) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

func doPost[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, body)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out T
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return out, err
	}

	c.logger.Debug("judge call", "method", method, "path", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, parseError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("judge: decode response: %w", err)
	}
	return out, nil
}

func parseError(resp *http.Response) *APIError {
	e := &APIError{StatusCode: resp.StatusCode}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		e.Message = body.Error
	} else {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}
