package ports

import (
	"context"
	"errors"
)

// ErrInvalidSize is returned when a requested size is negative.
var ErrInvalidSize = errors.New("size must not be negative")

// FileGenerator is the port for anything that can produce a fixture file.
type FileGenerator interface {
	// Generate writes a file at outPath exactly sizeBytes long.
	Generate(ctx context.Context, outPath string, sizeBytes int64) error
}
