package queue

import (
	"context"
)

// MessageSender enqueues one message body on the queue at queueURL.
type MessageSender interface {
	Send(ctx context.Context, queueURL, body string) error
}
