package mocks

import (
	"context"

	"exampaper/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Generate(ctx context.Context, prompt string) model.Reply {
	args := m.Called(ctx, prompt)
	return args.Get(0).(model.Reply)
}

func (m *MockGateway) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
