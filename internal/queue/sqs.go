package queue

import (
	"context"
	"fmt"

	"cloud-gateway/internal/awsclient"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type SQSClient struct {
	Client *sqs.Client
	cfg    aws.Config
}

func NewSQS(cfg aws.Config, endpointURL string) *SQSClient {
	client := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
		}
	})

	return &SQSClient{Client: client, cfg: cfg}
}

func (c *SQSClient) Send(ctx context.Context, queueURL, body string) error {
	if err := awsclient.CheckCredentials(ctx, c.cfg); err != nil {
		return err
	}

	_, err := c.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("unable to send message to %s: %w", queueURL, err)
	}

	return nil
}
