package api

import "time"

// EventType is a message type for lifecycle events streamed to external
// status sinks (NATS, SQS).
type EventType string

// Lifecycle event type constants
const (
	JobQueuedEvent  EventType = "job_queued"
	JobRunningEvent EventType = "job_running"
	JobDoneEvent    EventType = "job_done"
	JobErrorEvent   EventType = "job_error"
)

// Display size constraints applied to output carried inside events
const (
	MaxOutputHeight = 40
	MaxOutputWidth  = 80
)

// EventHeader is the common header for all lifecycle event messages.
type EventHeader struct {
	JobID     string    `json:"job_id"`
	EventType EventType `json:"event_type"`
}

// EnqueueJob is published when a submit call is accepted by the judge.
type EnqueueJob struct {
	EventHeader
	SubmissionUuid string `json:"submission_uuid"`
	ProblemID      int    `json:"problem_id"`
	Language       string `json:"language"`
	QueuedTime     string `json:"queued_time"`
}

// StartJob is published when a poll first reports a non-terminal status.
type StartJob struct {
	EventHeader
}

// FinishJob is published when a job reaches terminal success.
type FinishJob struct {
	EventHeader
	Verdict string `json:"verdict"`
	Output  string `json:"output"`
}

// FailJob is published when a job reaches terminal failure.
type FailJob struct {
	EventHeader
	ErrorMessage string `json:"error_message"`
}

func NewEventHeader(jobID string, eventType EventType) EventHeader {
	return EventHeader{
		JobID:     jobID,
		EventType: eventType,
	}
}

func NewEnqueueJob(jobID, submissionUuid string, problemID int, language string) EnqueueJob {
	return EnqueueJob{
		EventHeader:    NewEventHeader(jobID, JobQueuedEvent),
		SubmissionUuid: submissionUuid,
		ProblemID:      problemID,
		Language:       language,
		QueuedTime:     time.Now().Format(time.RFC3339),
	}
}

func NewStartJob(jobID string) StartJob {
	return StartJob{
		EventHeader: NewEventHeader(jobID, JobRunningEvent),
	}
}

func NewFinishJob(jobID, verdict, output string) FinishJob {
	return FinishJob{
		EventHeader: NewEventHeader(jobID, JobDoneEvent),
		Verdict:     verdict,
		Output:      output,
	}
}

func NewFailJob(jobID, errorMessage string) FailJob {
	return FailJob{
		EventHeader:  NewEventHeader(jobID, JobErrorEvent),
		ErrorMessage: errorMessage,
	}
}
