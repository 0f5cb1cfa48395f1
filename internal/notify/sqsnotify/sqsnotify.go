// Package sqsnotify publishes job lifecycle events to an AWS SQS queue.
package sqsnotify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/present"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
)

type SqsNotifier struct {
	client   *sqs.Client
	queueUrl string
	logger   *slog.Logger
}

// New builds a notifier from the ambient AWS configuration.
func New(ctx context.Context, queueUrl string, logger *slog.Logger) (*SqsNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &SqsNotifier{
		client:   sqs.NewFromConfig(cfg),
		queueUrl: queueUrl,
		logger:   logger,
	}, nil
}

func (s *SqsNotifier) JobQueued(jobID string, req reqbuild.ExecutionRequest) {
	s.send(api.NewEnqueueJob(jobID, req.Uuid, req.ProblemID, string(req.Language)))
}

func (s *SqsNotifier) JobRunning(jobID string) {
	s.send(api.NewStartJob(jobID))
}

func (s *SqsNotifier) JobDone(jobID string, result api.JobResult) {
	output := present.TrimToRect(result.Output, api.MaxOutputHeight, api.MaxOutputWidth)
	s.send(api.NewFinishJob(jobID, result.Verdict, output))
}

func (s *SqsNotifier) JobFailed(jobID string, detail string) {
	s.send(api.NewFailJob(jobID, detail))
}

func (s *SqsNotifier) send(msg any) {
	b, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("failed to marshal lifecycle event", "error", err)
		return
	}
	_, err = s.client.SendMessage(context.Background(), &sqs.SendMessageInput{
		QueueUrl:    aws.String(s.queueUrl),
		MessageBody: aws.String(string(b)),
	})
	if err != nil {
		s.logger.Warn("failed to send lifecycle event", "error", err)
	}
}
