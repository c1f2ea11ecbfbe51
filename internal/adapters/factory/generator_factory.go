package factory

import (
	"fmt"

	"github.com/hailam/fixturegen/internal/adapters/pattern"
	"github.com/hailam/fixturegen/internal/adapters/random"
	"github.com/hailam/fixturegen/internal/ports"
)

// StaticGeneratorFactory provides concrete implementations for FileGenerators.
type StaticGeneratorFactory struct {
	generators map[ports.FillMode]ports.FileGenerator
}

// NewStaticGeneratorFactory creates a new factory with pre-initialized generators.
// When atomic is set every generator writes through a temp file and rename.
func NewStaticGeneratorFactory(atomic bool) ports.GeneratorFactory {
	return &StaticGeneratorFactory{
		generators: map[ports.FillMode]ports.FileGenerator{
			ports.FillModePattern: pattern.New(atomic),
			ports.FillModeRandom:  random.New(atomic),
		},
	}
}

// For returns the appropriate FileGenerator for the given FillMode.
func (f *StaticGeneratorFactory) For(m ports.FillMode) (ports.FileGenerator, error) {
	gen, ok := f.generators[m]
	if !ok {
		return nil, fmt.Errorf("unsupported fill mode: %s", m)
	}
	return gen, nil
}
