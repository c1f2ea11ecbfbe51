package random

import (
	"context"
	cryptoRand "crypto/rand"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/hailam/fixturegen/internal/adapters/disk"
	"github.com/hailam/fixturegen/internal/ports"
	"github.com/hailam/fixturegen/internal/utils"
)

// chunkSize bounds how much is written between cancellation checks.
const chunkSize = 1024 * 1024

// RandomGenerator fills files with bytes read from a random source.
type RandomGenerator struct {
	src    io.Reader
	atomic bool
}

// New returns a generator backed by crypto/rand.
func New(atomic bool) ports.FileGenerator {
	return &RandomGenerator{src: cryptoRand.Reader, atomic: atomic}
}

func (g *RandomGenerator) Generate(ctx context.Context, path string, size int64) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ports.ErrInvalidSize, size)
	}
	f, err := disk.Create(path, g.atomic)
	if err != nil {
		return err
	}
	defer f.Close()

	for remaining := size; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := min(remaining, chunkSize)
		if err := utils.WriteRandomBytes(f, g.src, n); err != nil {
			return errors.Wrapf(err, "at offset %d", size-remaining)
		}
		remaining -= n
	}
	return f.Commit()
}
