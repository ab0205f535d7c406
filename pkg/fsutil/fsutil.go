// Package fsutil reads Markdown documents and writes configuration files
// for mdtype.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxDocumentSize bounds the documents ReadDocument will load (64 MiB).
const MaxDocumentSize = 64 << 20

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the document exceeds MaxDocumentSize.
	ErrTooLarge = errors.New("document too large")

	// ErrExists indicates the target of a no-clobber write already exists.
	ErrExists = errors.New("file already exists")
)

// ReadDocument reads the Markdown document at path.
// Errors wrap one of the sentinels above together with the os error.
func ReadDocument(ctx context.Context, path string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("read document: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	if stat.Size() > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, stat.Size())
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer file.Close()

	return ReadAllLimited(file, path)
}

// ReadAllLimited reads r to EOF, failing with ErrTooLarge past
// MaxDocumentSize. Name is used in error messages.
func ReadAllLimited(r io.Reader, name string) ([]byte, error) {
	content, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(content) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, name, MaxDocumentSize)
	}
	return content, nil
}

// classify wraps an os error with the matching sentinel.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
