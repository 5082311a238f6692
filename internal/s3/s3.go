package s3

import (
	"context"
	"fmt"
	"io"

	"cloud-gateway/internal/awsclient"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type FileStore struct {
	Client   *s3.Client
	uploader *manager.Uploader
	cfg      aws.Config
}

// NewFileStore builds an S3 client from cfg. A non-empty endpointURL points
// the client at an S3-compatible store and switches to path-style addressing.
func NewFileStore(cfg aws.Config, endpointURL string) *FileStore {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpointURL != "" {
			o.BaseEndpoint = aws.String(endpointURL)
			o.UsePathStyle = true
		}
	})

	return &FileStore{
		Client:   client,
		uploader: manager.NewUploader(client),
		cfg:      cfg,
	}
}

// Upload streams file to bucket/key in one managed upload. Bodies larger
// than the part size are sent as multipart by the uploader.
func (fs *FileStore) Upload(ctx context.Context, file io.Reader, bucket, key, contentType string) (string, error) {
	if err := awsclient.CheckCredentials(ctx, fs.cfg); err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	out, err := fs.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return out.Location, nil
}
