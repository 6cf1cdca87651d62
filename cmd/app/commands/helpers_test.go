package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/console"
)

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer

	printSummary(&out, console.NewPalette(false), "Total verified", domain.Summary{Total: 4, Valid: 1, Invalid: 3})

	assert.Contains(t, out.String(), "Total verified: 4\n")
	assert.Contains(t, out.String(), "Valid BSNs:   1  (25.0 percent)\n")
	assert.Contains(t, out.String(), "Invalid BSNs: 3  (75.0 percent)\n")
}

func TestPrintUsageErrors(t *testing.T) {
	plain := console.NewPalette(false)

	t.Run("field-errors-sorted-by-flag", func(t *testing.T) {
		var out bytes.Buffer
		err := validation.Errors{
			"Type":   validation.NewError("validation_bsn_class", "must be one of: valid, invalid"),
			"Output": validation.NewError("validation_required", "cannot be blank"),
		}

		printUsageErrors(&out, plain, err)

		assert.Equal(t, "Error: --output cannot be blank\nError: --type must be one of: valid, invalid\n", out.String())
	})

	t.Run("plain-error", func(t *testing.T) {
		var out bytes.Buffer

		printUsageErrors(&out, plain, errors.New("boom"))

		assert.Equal(t, "Error: boom\n", out.String())
	})
}

func TestReason(t *testing.T) {
	t.Run("path-error", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", domain.ErrInputRead, &os.PathError{Op: "open", Path: "a.txt", Err: os.ErrNotExist})

		assert.Equal(t, "open a.txt: file does not exist", reason(err, domain.ErrInputRead))
	})

	t.Run("other-error", func(t *testing.T) {
		err := fmt.Errorf("%w: %w", domain.ErrOutputWrite, os.ErrPermission)

		assert.Equal(t, "permission denied", reason(err, domain.ErrOutputWrite))
	})
}
