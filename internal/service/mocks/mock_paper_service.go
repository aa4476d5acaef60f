package mocks

import (
	"context"

	"exampaper/internal/model"
	"exampaper/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPaperService struct {
	mock.Mock
}

func (m *MockPaperService) Extract(ctx context.Context, doc model.UploadedDocument) (*model.ExtractedText, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractedText), args.Error(1)
}

func (m *MockPaperService) ExtractObject(ctx context.Context, key string) (*model.ExtractedText, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExtractedText), args.Error(1)
}

func (m *MockPaperService) Generate(ctx context.Context, instruction, text string) *service.Generation {
	args := m.Called(ctx, instruction, text)
	return args.Get(0).(*service.Generation)
}

func (m *MockPaperService) Render(ctx context.Context, reply string) (*model.RenderedPaper, error) {
	args := m.Called(ctx, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedPaper), args.Error(1)
}

func (m *MockPaperService) DefaultInstruction() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPaperService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
