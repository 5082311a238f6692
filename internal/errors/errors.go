package errors

import (
	"errors"

	"github.com/aws/smithy-go"
)

// ErrCredentialsMissing indicates the SDK could not resolve AWS credentials.
var ErrCredentialsMissing = errors.New("AWS credentials not available")

func IsCredentialsMissing(err error) bool {
	return errors.Is(err, ErrCredentialsMissing)
}

// ProviderMessage returns the text the SDK reported for a failed call,
// without any wrapping added on the way up. Errors that never reached the
// SDK operation are returned as-is.
func ProviderMessage(err error) string {
	if err == nil {
		return ""
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return opErr.Error()
	}

	return err.Error()
}
