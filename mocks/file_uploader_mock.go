package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockFileUploader struct {
	mock.Mock
}

func (m *MockFileUploader) Upload(ctx context.Context, file io.Reader, bucket, key, contentType string) (string, error) {
	args := m.Called(ctx, file, bucket, key, contentType)

	return args.String(0), args.Error(1)
}
