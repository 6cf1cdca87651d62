package usecase

import (
	"context"
	"time"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/metrics"
)

const metricsDomain = "bsn"

// bsnUseCaseWithMetrics decorates BSNUseCase with metrics instrumentation.
type bsnUseCaseWithMetrics struct {
	next    BSNUseCase
	metrics metrics.BusinessMetrics
}

// NewBSNUseCaseWithMetrics wraps a BSNUseCase with metrics recording.
func NewBSNUseCaseWithMetrics(useCase BSNUseCase, m metrics.BusinessMetrics) BSNUseCase {
	return &bsnUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Generate records metrics for generation runs.
func (b *bsnUseCaseWithMetrics) Generate(ctx context.Context, class domain.Class, count int) ([]int64, error) {
	start := time.Now()
	numbers, err := b.next.Generate(ctx, class, count)
	b.record(ctx, "generate_"+class.String(), start, err)
	if err == nil {
		b.metrics.RecordNumbers(ctx, class.String(), len(numbers))
	}
	return numbers, err
}

// Export records metrics for listing writes.
func (b *bsnUseCaseWithMetrics) Export(ctx context.Context, path string, numbers []int64) error {
	start := time.Now()
	err := b.next.Export(ctx, path, numbers)
	b.record(ctx, "export", start, err)
	return err
}

// Summarize is not instrumented.
func (b *bsnUseCaseWithMetrics) Summarize(numbers []int64) domain.Summary {
	return b.next.Summarize(numbers)
}

// Verify records metrics for listing verification.
func (b *bsnUseCaseWithMetrics) Verify(ctx context.Context, path string) (domain.Summary, error) {
	start := time.Now()
	summary, err := b.next.Verify(ctx, path)
	b.record(ctx, "verify", start, err)
	return summary, err
}

func (b *bsnUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	b.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	b.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
