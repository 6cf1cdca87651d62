package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	validation "github.com/jellydator/validation"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/bsn/usecase"
	"github.com/allisson/bsn-generator/internal/console"
	apperrors "github.com/allisson/bsn-generator/internal/errors"
	customValidation "github.com/allisson/bsn-generator/internal/validation"
)

// GenerateOptions holds the command-line input of a generation run.
type GenerateOptions struct {
	Type     string
	Count    int
	Output   string
	NoBanner bool
	Version  string
}

// Validate checks the required options. Count is checked separately, after the banner.
func (o GenerateOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Type, validation.Required, customValidation.BSNClass),
		validation.Field(&o.Output, validation.Required, customValidation.NotBlank),
	)
}

// RunGenerate produces opts.Count unique numbers of the requested type, logs each one to
// out, writes them to opts.Output and prints a summary.
//
// A non-positive count is rejected before anything is generated, and no file is created.
// A write failure is reported after the numbers have already been printed.
func RunGenerate(
	ctx context.Context,
	bsnUseCase usecase.BSNUseCase,
	logger *slog.Logger,
	out io.Writer,
	p console.Palette,
	opts GenerateOptions,
) error {
	if err := opts.Validate(); err != nil {
		printUsageErrors(out, p, err)
		return customValidation.WrapValidationError(err)
	}
	class, err := domain.ParseClass(opts.Type)
	if err != nil {
		return err
	}

	if !opts.NoBanner {
		printBanner(out, p, opts.Version)
	}

	if err := validation.Validate(opts.Count, customValidation.PositiveCount); err != nil {
		_, _ = fmt.Fprintln(out, p.Red("Error: --count must be a positive integer."))
		return apperrors.Wrapf(domain.ErrInvalidCount, "got %d", opts.Count)
	}

	logger.Info("generating numbers",
		slog.String("type", class.String()),
		slog.Int("count", opts.Count),
		slog.String("output", opts.Output),
	)

	_, _ = fmt.Fprintf(out, "Generating %s %s BSN numbers...\n",
		p.Bold(opts.Count),
		classLabel(p, class, class.Label()),
	)

	numbers, err := bsnUseCase.Generate(ctx, class, opts.Count)
	if err != nil {
		_, _ = fmt.Fprintln(out, p.Red(fmt.Sprintf("Error: %v", err)))
		return fmt.Errorf("failed to generate numbers: %w", err)
	}

	_, _ = fmt.Fprintln(out)
	label := classLabel(p, class, "["+class.Label()+"]")
	for _, n := range numbers {
		_, _ = fmt.Fprintf(out, "%s %d\n", label, n)
	}

	if err := bsnUseCase.Export(ctx, opts.Output, numbers); err != nil {
		_, _ = fmt.Fprintln(out, p.Red("Error writing to output file: "+reason(err, domain.ErrOutputWrite)))
		return err
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "%s Generated %s %s BSN numbers.\n", p.Green("Success"), p.Bold(opts.Count), class)
	_, _ = fmt.Fprintf(out, "Saved to: %s\n", p.Yellow(opts.Output))

	summary := bsnUseCase.Summarize(numbers)
	printSummary(out, p, "Total generated", summary)
	printConsistency(out, p, summary, class)

	logger.Info("generation completed",
		slog.String("type", class.String()),
		slog.Int("count", len(numbers)),
		slog.Bool("consistent", summary.Consistent(class)),
	)

	return nil
}
