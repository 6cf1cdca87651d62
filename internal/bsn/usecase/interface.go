// Package usecase orchestrates BSN generation, export and verification.
package usecase

import (
	"context"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/bsn/repository"
)

// ListingRepository defines the interface for listing file persistence.
type ListingRepository interface {
	Save(ctx context.Context, path string, numbers []int64) error
	Load(ctx context.Context, path string) ([]repository.Entry, error)
}

// BSNUseCase defines the operations exposed to the command line.
type BSNUseCase interface {
	// Generate returns count unique numbers of the given class in a stable order.
	Generate(ctx context.Context, class domain.Class, count int) ([]int64, error)

	// Export writes numbers to path, one per line, in the given order.
	Export(ctx context.Context, path string, numbers []int64) error

	// Summarize re-validates numbers and returns their class breakdown.
	Summarize(numbers []int64) domain.Summary

	// Verify loads a listing from path and returns its class breakdown. Lines that are
	// not integers count as invalid.
	Verify(ctx context.Context, path string) (domain.Summary, error)
}
