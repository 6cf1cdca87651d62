// Package commands contains CLI command implementations for the application.
package commands

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
	"github.com/allisson/bsn-generator/internal/console"
	apperrors "github.com/allisson/bsn-generator/internal/errors"
)

const separator = "----------------------------------------"

// DefaultOutput returns the writer commands print their results to.
func DefaultOutput() io.Writer {
	return os.Stdout
}

// printBanner writes the startup banner.
func printBanner(out io.Writer, p console.Palette, version string) {
	_, _ = fmt.Fprintln(out, p.Cyan("bsn-generator v"+version))
	_, _ = fmt.Fprintln(out, p.Blue("Synthetic Dutch BSN test fixtures"))
	_, _ = fmt.Fprintln(out, p.Yellow(separator))
}

// printSummary writes the total/valid/invalid breakdown. totalLabel names the first
// row, e.g. "Total generated".
func printSummary(out io.Writer, p console.Palette, totalLabel string, s domain.Summary) {
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, p.Bold("Summary"))
	_, _ = fmt.Fprintln(out, p.Yellow(separator))
	_, _ = fmt.Fprintf(out, "%s: %s\n", totalLabel, p.Bold(s.Total))
	_, _ = fmt.Fprintf(out, "Valid BSNs:   %s  (%.1f percent)\n", p.Green(s.Valid), s.ValidPercent())
	_, _ = fmt.Fprintf(out, "Invalid BSNs: %s  (%.1f percent)\n", p.Red(s.Invalid), s.InvalidPercent())
}

// printConsistency reports whether the summary matches the requested class. The
// generator already filters on the class, so the mixture note only shows up when the
// validator itself is broken.
func printConsistency(out io.Writer, p console.Palette, s domain.Summary, class domain.Class) {
	_, _ = fmt.Fprintln(out)
	if s.Consistent(class) {
		_, _ = fmt.Fprintln(out, p.Green(fmt.Sprintf("All generated numbers are %s as requested.", class)))
		return
	}
	_, _ = fmt.Fprintln(out, p.Yellow(fmt.Sprintf(
		"Note: mixture of valid and invalid numbers detected, even though type='%s' was requested.",
		class,
	)))
}

// classLabel colors text green for the valid class and red for the invalid one.
func classLabel(p console.Palette, class domain.Class, text string) string {
	if class.WantsValid() {
		return p.Green(text)
	}
	return p.Red(text)
}

// printUsageErrors writes one "Error: --flag message" line per invalid option.
func printUsageErrors(out io.Writer, p console.Palette, err error) {
	var fieldErrs validation.Errors
	if !apperrors.As(err, &fieldErrs) {
		_, _ = fmt.Fprintln(out, p.Red("Error: "+err.Error()))
		return
	}
	for _, field := range slices.Sorted(maps.Keys(fieldErrs)) {
		_, _ = fmt.Fprintln(out, p.Red(fmt.Sprintf("Error: --%s %v", strings.ToLower(field), fieldErrs[field])))
	}
}

// reason returns the underlying cause of an I/O failure without the sentinel prefix.
func reason(err, sentinel error) string {
	var pathErr *os.PathError
	if apperrors.As(err, &pathErr) {
		return pathErr.Error()
	}
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}
