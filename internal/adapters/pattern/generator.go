package pattern

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hailam/fixturegen/internal/adapters/disk"
	"github.com/hailam/fixturegen/internal/ports"
)

// DefaultBlockSize is the unit of repeated writing, 1 MiB.
const DefaultBlockSize = 1024 * 1024

// DefaultPattern is tiled across every block.
var DefaultPattern = []byte("abcd")

// Block is a write buffer holding a whole number of pattern repetitions.
type Block []byte

// NewBlock tiles p into a block of blockSize bytes. blockSize must be a
// positive multiple of len(p) so every block starts at pattern offset 0.
func NewBlock(p []byte, blockSize int) (Block, error) {
	if len(p) == 0 {
		return nil, errors.New("pattern is empty")
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("block size %d must be positive", blockSize)
	}
	if blockSize%len(p) != 0 {
		return nil, fmt.Errorf("block size %d is not a multiple of pattern length %d", blockSize, len(p))
	}
	return Block(bytes.Repeat(p, blockSize/len(p))), nil
}

// PatternGenerator writes files filled with a repeating byte pattern.
type PatternGenerator struct {
	block  Block
	atomic bool
}

// New returns a generator using the 1 MiB "abcd" block.
func New(atomic bool) ports.FileGenerator {
	g, err := NewWithBlock(DefaultPattern, DefaultBlockSize, atomic)
	if err != nil {
		panic(err) // defaults are always valid
	}
	return g
}

// NewWithBlock returns a generator for a custom pattern and block size.
func NewWithBlock(p []byte, blockSize int, atomic bool) (*PatternGenerator, error) {
	block, err := NewBlock(p, blockSize)
	if err != nil {
		return nil, err
	}
	return &PatternGenerator{block: block, atomic: atomic}, nil
}

func (g *PatternGenerator) Generate(ctx context.Context, path string, size int64) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ports.ErrInvalidSize, size)
	}
	f, err := disk.Create(path, g.atomic)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := WriteBlocks(ctx, f, g.block, size); err != nil {
		return err
	}
	return f.Commit()
}

// WriteBlocks writes size bytes of block to w: size/len(block) full blocks,
// then the first size%len(block) bytes once. The context is checked before
// every write. It returns the number of bytes written.
func WriteBlocks(ctx context.Context, w io.Writer, block []byte, size int64) (int64, error) {
	if size < 0 {
		return 0, fmt.Errorf("%w: %d", ports.ErrInvalidSize, size)
	}
	if len(block) == 0 {
		return 0, errors.New("block is empty")
	}
	blockSize := int64(len(block))
	full, rem := size/blockSize, size%blockSize

	var written int64
	for i := int64(0); i < full; i++ {
		n, err := writeChunk(ctx, w, block)
		written += n
		if err != nil {
			return written, errors.Wrapf(err, "block %d", i)
		}
	}
	if rem > 0 {
		n, err := writeChunk(ctx, w, block[:rem])
		written += n
		if err != nil {
			return written, errors.Wrap(err, "remainder")
		}
	}
	return written, nil
}

func writeChunk(ctx context.Context, w io.Writer, p []byte) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := w.Write(p)
	if err == nil && n != len(p) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}
