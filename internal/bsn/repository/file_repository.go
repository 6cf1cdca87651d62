// Package repository persists BSN listings as flat text files, one number per line.
package repository

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"

	"github.com/allisson/bsn-generator/internal/bsn/domain"
)

// Entry is one line read back from a listing.
type Entry struct {
	Line   int
	Raw    string
	Number int64
	// Parsed is false when Raw is not a decimal integer.
	Parsed bool
}

// FileRepository reads and writes listing files through an afs.Service.
type FileRepository struct {
	fs afs.Service
}

// NewFileRepository creates a FileRepository. A nil fs falls back to afs.New().
func NewFileRepository(fs afs.Service) *FileRepository {
	if fs == nil {
		fs = afs.New()
	}
	return &FileRepository{fs: fs}
}

// Save writes numbers to path in order, one decimal number per newline-terminated line.
// The parent directory must already exist.
func (r *FileRepository) Save(ctx context.Context, path string, numbers []int64) error {
	location, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}

	// afs creates missing parent directories on upload; a listing must not.
	parent := filepath.Dir(location)
	exists, err := r.fs.Exists(ctx, parent)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}
	if !exists {
		return fmt.Errorf(
			"%w: %w",
			domain.ErrOutputWrite,
			&os.PathError{Op: "open", Path: path, Err: os.ErrNotExist},
		)
	}

	var buf bytes.Buffer
	for _, n := range numbers {
		buf.WriteString(strconv.FormatInt(n, 10))
		buf.WriteByte('\n')
	}

	if err := r.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(buf.Bytes())); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrOutputWrite, err)
	}
	return nil
}

// Load reads a listing from path. Blank lines are skipped; lines that are not decimal
// integers are returned with Parsed set to false.
func (r *FileRepository) Load(ctx context.Context, path string) ([]Entry, error) {
	location, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputRead, err)
	}

	exists, err := r.fs.Exists(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputRead, err)
	}
	if !exists {
		return nil, fmt.Errorf(
			"%w: %w",
			domain.ErrInputRead,
			&os.PathError{Op: "open", Path: path, Err: os.ErrNotExist},
		)
	}

	data, err := r.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputRead, err)
	}

	var entries []Entry
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; scanner.Scan(); line++ {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		n, parseErr := strconv.ParseInt(raw, 10, 64)
		entries = append(entries, Entry{
			Line:   line,
			Raw:    raw,
			Number: n,
			Parsed: parseErr == nil,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputRead, err)
	}
	return entries, nil
}
