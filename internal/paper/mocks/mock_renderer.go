package mocks

import (
	"exampaper/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(reply string) (*model.RenderedPaper, error) {
	args := m.Called(reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RenderedPaper), args.Error(1)
}
