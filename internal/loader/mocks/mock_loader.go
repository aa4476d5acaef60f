package mocks

import (
	"context"
	"io"

	"exampaper/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Load(ctx context.Context, r io.Reader) (*model.ExtractedText, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractedText), args.Error(1)
}
