package api

import (
	"log/slog"
	"net/http"

	"cloud-gateway/internal/queue"
)

// SendService enqueues the "message" field of a JSON body on the
// configured queue.
type SendService struct {
	name     string
	queueURL string
	sender   queue.MessageSender
	logger   *slog.Logger
}

func NewSendService(name, queueURL string, sender queue.MessageSender, logger *slog.Logger) *SendService {
	return &SendService{
		name:     name,
		queueURL: queueURL,
		sender:   sender,
		logger:   logger,
	}
}

func (s *SendService) Name() string       { return s.name }
func (s *SendService) ActionPath() string { return "send" }

func (s *SendService) Handle(r *http.Request) Outcome {
	req, err := ValidateSend(r)
	if err != nil {
		return validationOutcome(err)
	}

	echo := map[string]string{"body": req.Message}

	if s.queueURL == "" {
		return Skipped{Action: "SQS send", TargetEnv: "QUEUE_URL", Echo: echo}
	}

	if err := s.sender.Send(r.Context(), s.queueURL, req.Message); err != nil {
		s.logger.Error("sqs send failed",
			slog.String("queue_url", s.queueURL),
			slog.Any("error", err),
		)
		return gatewayOutcome(err)
	}

	s.logger.Info("sqs send succeeded", slog.String("queue_url", s.queueURL))

	return Succeeded{
		Message:   "Message sent",
		TargetKey: "queue_url",
		Target:    s.queueURL,
		Echo:      echo,
	}
}
