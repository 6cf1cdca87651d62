package usecase

import (
	"context"
	"log/slog"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/bsn/service"
)

type bsnUseCase struct {
	generator service.Generator
	validator service.Validator
	repo      ListingRepository
	logger    *slog.Logger
}

// NewBSNUseCase creates a new BSNUseCase.
func NewBSNUseCase(
	generator service.Generator,
	validator service.Validator,
	repo ListingRepository,
	logger *slog.Logger,
) BSNUseCase {
	return &bsnUseCase{
		generator: generator,
		validator: validator,
		repo:      repo,
		logger:    logger,
	}
}

// Generate delegates to the generator and logs the outcome.
func (b *bsnUseCase) Generate(ctx context.Context, class domain.Class, count int) ([]int64, error) {
	b.logger.Debug("generating numbers", slog.String("type", class.String()), slog.Int("count", count))

	numbers, err := b.generator.Generate(ctx, class, count)
	if err != nil {
		return nil, err
	}

	b.logger.Info("numbers generated", slog.String("type", class.String()), slog.Int("count", len(numbers)))
	return numbers, nil
}

// Export writes the listing file.
func (b *bsnUseCase) Export(ctx context.Context, path string, numbers []int64) error {
	if err := b.repo.Save(ctx, path, numbers); err != nil {
		return err
	}

	b.logger.Info("listing saved", slog.String("path", path), slog.Int("count", len(numbers)))
	return nil
}

// Summarize counts valid and invalid numbers using the validator.
func (b *bsnUseCase) Summarize(numbers []int64) domain.Summary {
	summary := domain.Summary{Total: len(numbers)}
	for _, n := range numbers {
		if b.validator.IsValid(n) {
			summary.Valid++
		}
	}
	summary.Invalid = summary.Total - summary.Valid
	return summary
}

// Verify reads a listing and summarizes it.
func (b *bsnUseCase) Verify(ctx context.Context, path string) (domain.Summary, error) {
	entries, err := b.repo.Load(ctx, path)
	if err != nil {
		return domain.Summary{}, err
	}

	summary := domain.Summary{Total: len(entries)}
	for _, e := range entries {
		if !e.Parsed {
			b.logger.Warn("unparsable line", slog.Int("line", e.Line), slog.String("value", e.Raw))
			continue
		}
		if b.validator.IsValid(e.Number) {
			summary.Valid++
		}
	}
	summary.Invalid = summary.Total - summary.Valid

	b.logger.Info("listing verified",
		slog.String("path", path),
		slog.Int("total", summary.Total),
		slog.Int("valid", summary.Valid),
	)
	return summary, nil
}
