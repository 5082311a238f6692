package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) Send(ctx context.Context, queueURL, body string) error {
	args := m.Called(ctx, queueURL, body)

	return args.Error(0)
}
