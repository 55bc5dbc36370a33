package service

import (
	"context"
	"time"

	"histbench-api/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockQuestionRepository ---
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Query(filter domain.QuestionFilter, page, perPage int) (int, []*domain.Question) {
	args := m.Called(filter, page, perPage)
	if args.Get(1) == nil {
		return args.Int(0), nil
	}
	return args.Int(0), args.Get(1).([]*domain.Question)
}

func (m *MockQuestionRepository) GetByID(taskID int) *domain.Question {
	args := m.Called(taskID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Question)
}

func (m *MockQuestionRepository) All() []*domain.Question {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Question)
}

// --- MockConversionCache ---
type MockConversionCache struct {
	mock.Mock
}

func (m *MockConversionCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockConversionCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}
