package service

import (
	"context"

	"github.com/maheshrc27/content-pipeline/internal/transfer"
	"github.com/stretchr/testify/mock"
)

type MockOpenAIService struct {
	mock.Mock
}

func (m *MockOpenAIService) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockOpenAIService) GenerateImage(ctx context.Context, prompt, size string) (string, error) {
	args := m.Called(ctx, prompt, size)
	return args.String(0), args.Error(1)
}

type MockAyrshareService struct {
	mock.Mock
}

func (m *MockAyrshareService) Post(ctx context.Context, payload *transfer.AyrsharePostRequest) (*transfer.AyrsharePostResponse, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transfer.AyrsharePostResponse), args.Error(1)
}
