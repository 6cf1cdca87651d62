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

// VerifyOptions holds the command-line input of a verification run.
type VerifyOptions struct {
	Input string
	// Type is optional; when set the listing must consist of that class only.
	Type string
}

// Validate checks the verify options.
func (o VerifyOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Input, validation.Required, customValidation.NotBlank),
		validation.Field(&o.Type, customValidation.BSNClass),
	)
}

// RunVerify re-validates every line of an existing listing and prints the breakdown.
// Returns ErrClassMismatch when opts.Type is set and the listing is not pure.
func RunVerify(
	ctx context.Context,
	bsnUseCase usecase.BSNUseCase,
	logger *slog.Logger,
	out io.Writer,
	p console.Palette,
	opts VerifyOptions,
) error {
	if err := opts.Validate(); err != nil {
		printUsageErrors(out, p, err)
		return customValidation.WrapValidationError(err)
	}

	summary, err := bsnUseCase.Verify(ctx, opts.Input)
	if err != nil {
		_, _ = fmt.Fprintln(out, p.Red("Error reading input file: "+reason(err, domain.ErrInputRead)))
		return err
	}

	_, _ = fmt.Fprintf(out, "Verified %s numbers from %s\n", p.Bold(summary.Total), p.Yellow(opts.Input))
	printSummary(out, p, "Total verified", summary)

	if opts.Type == "" {
		return nil
	}

	class, err := domain.ParseClass(opts.Type)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out)
	if !summary.Consistent(class) {
		_, _ = fmt.Fprintln(out, p.Red(fmt.Sprintf("Listing is not purely %s.", class)))
		logger.Warn("listing does not match expected type",
			slog.String("path", opts.Input),
			slog.String("type", class.String()),
			slog.Int("valid", summary.Valid),
			slog.Int("invalid", summary.Invalid),
		)
		return apperrors.Wrapf(domain.ErrClassMismatch, "%s", opts.Input)
	}

	_, _ = fmt.Fprintln(out, p.Green(fmt.Sprintf("All numbers are %s as expected.", class)))
	return nil
}
