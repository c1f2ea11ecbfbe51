package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/hailam/fixturegen/internal/ports"
)

// Request describes one fixture file to produce.
type Request struct {
	OutputPath string
	SizeBytes  int64
	Fill       ports.FillMode
	// SizeLabel is the size with its unit ("1 GB", "10 bytes"), shown in the confirmation.
	SizeLabel string
}

// FileService orchestrates file generation by validating the request,
// selecting the generator for its fill mode, and invoking it.
type FileService struct {
	factory ports.GeneratorFactory
}

// NewFileService constructs a FileService with the given factory.
func NewFileService(factory ports.GeneratorFactory) *FileService {
	return &FileService{factory: factory}
}

// CreateFile generates req.OutputPath with exactly req.SizeBytes bytes.
func (s *FileService) CreateFile(ctx context.Context, req Request) error {
	// 1. Validate before touching the filesystem
	if req.SizeBytes < 0 {
		return fmt.Errorf("invalid size %d: %w", req.SizeBytes, ports.ErrInvalidSize)
	}
	if req.OutputPath == "" {
		return errors.New("output path is empty")
	}

	// 2. Retrieve the generator for this fill mode
	generator, err := s.factory.For(req.Fill)
	if err != nil {
		return fmt.Errorf("no generator for fill mode '%s': %w", req.Fill, err)
	}

	// 3. Invoke the generator
	if err := generator.Generate(ctx, req.OutputPath, req.SizeBytes); err != nil {
		return fmt.Errorf("failed to generate %s: %w", req.OutputPath, err)
	}
	return nil
}

// Confirmation is the message printed after a successful CreateFile. It
// reports the requested label, which is not necessarily the byte count.
func Confirmation(req Request) string {
	return fmt.Sprintf("File '%s' created with size %s.", req.OutputPath, req.SizeLabel)
}
