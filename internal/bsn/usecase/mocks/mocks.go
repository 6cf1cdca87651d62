// Package mocks provides mock implementations for testing BSN use cases and commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/bsn/repository"
)

// MockBSNUseCase is a mock implementation of BSNUseCase.
type MockBSNUseCase struct {
	mock.Mock
}

// Generate mocks the Generate method of BSNUseCase.
func (m *MockBSNUseCase) Generate(ctx context.Context, class domain.Class, count int) ([]int64, error) {
	args := m.Called(ctx, class, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// Export mocks the Export method of BSNUseCase.
func (m *MockBSNUseCase) Export(ctx context.Context, path string, numbers []int64) error {
	args := m.Called(ctx, path, numbers)
	return args.Error(0)
}

// Summarize mocks the Summarize method of BSNUseCase.
func (m *MockBSNUseCase) Summarize(numbers []int64) domain.Summary {
	args := m.Called(numbers)
	return args.Get(0).(domain.Summary)
}

// Verify mocks the Verify method of BSNUseCase.
func (m *MockBSNUseCase) Verify(ctx context.Context, path string) (domain.Summary, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(domain.Summary), args.Error(1)
}

// MockListingRepository is a mock implementation of ListingRepository.
type MockListingRepository struct {
	mock.Mock
}

// Save mocks the Save method of ListingRepository.
func (m *MockListingRepository) Save(ctx context.Context, path string, numbers []int64) error {
	args := m.Called(ctx, path, numbers)
	return args.Error(0)
}

// Load mocks the Load method of ListingRepository.
func (m *MockListingRepository) Load(ctx context.Context, path string) ([]repository.Entry, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Entry), args.Error(1)
}

// MockGenerator is a mock implementation of service.Generator.
type MockGenerator struct {
	mock.Mock
}

// Generate mocks the Generate method of Generator.
func (m *MockGenerator) Generate(ctx context.Context, class domain.Class, count int) ([]int64, error) {
	args := m.Called(ctx, class, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
