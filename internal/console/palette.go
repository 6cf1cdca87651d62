// Package console decorates terminal output with ANSI colors.
package console

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI escape sequences.
const (
	Reset  = "\033[0m"
	Green  = "\033[92m"
	Red    = "\033[91m"
	Yellow = "\033[93m"
	Blue   = "\033[94m"
	Cyan   = "\033[96m"
	Bold   = "\033[1m"
)

// Palette renders values as decorated text. Each method formats v with %v.
type Palette interface {
	Green(v any) string
	Red(v any) string
	Yellow(v any) string
	Blue(v any) string
	Cyan(v any) string
	Bold(v any) string
}

// NewPalette returns an ANSI palette when enabled is true and a plain one otherwise.
func NewPalette(enabled bool) Palette {
	if enabled {
		return ansiPalette{}
	}
	return plainPalette{}
}

// ColorEnabled reports whether output to f should be colored: the user has not opted
// out and f is an interactive terminal.
func ColorEnabled(noColor bool, f *os.File) bool {
	if noColor || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type ansiPalette struct{}

func (ansiPalette) Green(v any) string  { return wrap(Green, v) }
func (ansiPalette) Red(v any) string    { return wrap(Red, v) }
func (ansiPalette) Yellow(v any) string { return wrap(Yellow, v) }
func (ansiPalette) Blue(v any) string   { return wrap(Blue, v) }
func (ansiPalette) Cyan(v any) string   { return wrap(Cyan, v) }
func (ansiPalette) Bold(v any) string   { return wrap(Bold, v) }

func wrap(code string, v any) string {
	return fmt.Sprintf("%s%v%s", code, v, Reset)
}

type plainPalette struct{}

func (plainPalette) Green(v any) string  { return fmt.Sprint(v) }
func (plainPalette) Red(v any) string    { return fmt.Sprint(v) }
func (plainPalette) Yellow(v any) string { return fmt.Sprint(v) }
func (plainPalette) Blue(v any) string   { return fmt.Sprint(v) }
func (plainPalette) Cyan(v any) string   { return fmt.Sprint(v) }
func (plainPalette) Bold(v any) string   { return fmt.Sprint(v) }
