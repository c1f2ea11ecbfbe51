// Package config holds the settings for one fixture generation run. The
// compiled-in defaults reproduce the historical fixture exactly; an optional
// TOML file can override them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/pelletier/go-toml"

	"github.com/hailam/fixturegen/internal/application"
	"github.com/hailam/fixturegen/internal/ports"
	"github.com/hailam/fixturegen/internal/utils"
)

const (
	// DefaultFile is the overlay looked up in the working directory.
	DefaultFile = "fixturegen.toml"

	DefaultOutputPath = "large_file.bin"
	DefaultSizeGB     = 1
)

// Config is the generation request as configured by the user.
type Config struct {
	OutputPath string
	// SizeGB is converted with utils.LegacyGBToBytes.
	SizeGB float64
	// Size, when set, is an exact size spec ("1048580", "10MB") that wins over SizeGB.
	Size   string
	Fill   ports.FillMode
	Atomic bool
	// Quiet suppresses the progress spinner.
	Quiet bool
}

// fileConfig mirrors Config for decoding; nil means the key was absent.
// size_gb is read from the tree directly since it may be an integer or a float.
type fileConfig struct {
	Output *string `toml:"output"`
	Size   *string `toml:"size"`
	Fill   *string `toml:"fill"`
	Atomic *bool   `toml:"atomic"`
	Quiet  *bool   `toml:"quiet"`
}

// Default returns the historical settings: 1 "GB" of "abcd" in large_file.bin.
func Default() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		SizeGB:     DefaultSizeGB,
		Fill:       ports.FillModePattern,
	}
}

// Load returns Default overlaid with the TOML file at path. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	tree, err := toml.LoadBytes(data)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	var fc fileConfig
	if err := tree.Unmarshal(&fc); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.Output != nil {
		cfg.OutputPath = *fc.Output
	}
	switch v := tree.Get("size_gb").(type) {
	case nil:
	case int64:
		cfg.SizeGB = float64(v)
	case float64:
		cfg.SizeGB = v
	default:
		return cfg, fmt.Errorf("parse config %s: size_gb must be a number, got %T", path, v)
	}
	if fc.Size != nil {
		cfg.Size = *fc.Size
	}
	if fc.Fill != nil {
		cfg.Fill = ports.FillMode(*fc.Fill)
	}
	if fc.Atomic != nil {
		cfg.Atomic = *fc.Atomic
	}
	if fc.Quiet != nil {
		cfg.Quiet = *fc.Quiet
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.OutputPath == "" {
		return errors.New("output path is empty")
	}
	if math.IsNaN(c.SizeGB) || math.IsInf(c.SizeGB, 0) {
		return fmt.Errorf("size_gb %v is not a finite number", c.SizeGB)
	}
	if c.SizeGB < 0 {
		return fmt.Errorf("size_gb %v: %w", c.SizeGB, ports.ErrInvalidSize)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which no longer fits.
	if c.SizeGB*1024*1024 >= math.MaxInt64 {
		return fmt.Errorf("size_gb %v overflows the byte count", c.SizeGB)
	}
	if c.Size != "" {
		if _, err := utils.ParseSize(c.Size); err != nil {
			return fmt.Errorf("size %q: %w", c.Size, err)
		}
	}
	if !c.Fill.Valid() {
		return fmt.Errorf("unknown fill mode %q", c.Fill)
	}
	return nil
}

// Request converts the config into a generation request.
func (c Config) Request() (application.Request, error) {
	if err := c.Validate(); err != nil {
		return application.Request{}, err
	}
	req := application.Request{
		OutputPath: c.OutputPath,
		SizeBytes:  utils.LegacyGBToBytes(c.SizeGB),
		Fill:       c.Fill,
		SizeLabel:  utils.FormatGB(c.SizeGB) + " GB",
	}
	if c.Size != "" {
		n, _ := utils.ParseSize(c.Size)
		req.SizeBytes = n
		req.SizeLabel = fmt.Sprintf("%d bytes", n)
	}
	return req, nil
}
