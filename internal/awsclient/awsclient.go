package awsclient

import (
	"context"
	"fmt"

	apperrors "cloud-gateway/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

type Options struct {
	Region    string
	AccessKey string
	SecretKey string
}

// Load resolves the shared AWS config. Static credentials are used only
// when both keys are present, otherwise the default provider chain applies.
// Nothing here touches the network; credentials resolve lazily on first use.
func Load(ctx context.Context, opts Options) (aws.Config, error) {
	cfgOpts := make([]func(*config.LoadOptions) error, 0, 2)

	if opts.Region != "" {
		cfgOpts = append(cfgOpts, config.WithRegion(opts.Region))
	}

	if opts.AccessKey != "" && opts.SecretKey != "" {
		cfgOpts = append(cfgOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return cfg, nil
}

// CheckCredentials resolves credentials through the config's provider and
// reports ErrCredentialsMissing when none are available. The provider is
// cached by the SDK, so the following API call reuses the same value.
func CheckCredentials(ctx context.Context, cfg aws.Config) error {
	if cfg.Credentials == nil {
		return apperrors.ErrCredentialsMissing
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCredentialsMissing, err)
	}

	if !creds.HasKeys() {
		return apperrors.ErrCredentialsMissing
	}

	return nil
}
