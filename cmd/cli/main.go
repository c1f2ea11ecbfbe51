package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hailam/fixturegen/internal/adapters/factory"
	"github.com/hailam/fixturegen/internal/application"
	"github.com/hailam/fixturegen/internal/config"
	"github.com/hailam/fixturegen/internal/ui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generates a pattern-filled binary fixture file.",
		Long: `fixturegen writes large_file.bin filled with the repeating byte pattern "abcd",
for use as compressible test data in erasure-coding and storage-capacity tests.

It takes no arguments. Settings can be overridden with an optional
` + config.DefaultFile + ` in the working directory:

  output   = "large_file.bin"
  size_gb  = 1          # historical figure: converted as size_gb*1024*1024 bytes
  size     = "1048580"  # exact size, wins over size_gb
  fill     = "pattern"  # or "random"
  atomic   = false      # write to a temp file and rename on success
  quiet    = false`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.DefaultFile)
			if err == nil {
				err = run(cmd.Context(), cfg, ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Quiet))
			} else {
				ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), false).Error(err.Error())
			}
			return err
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "fixturegen", version)
		},
	})
	return rootCmd
}

// run is the composition root for one generation.
func run(ctx context.Context, cfg config.Config, out *ui.UI) error {
	req, err := cfg.Request()
	if err != nil {
		out.Error(err.Error())
		return err
	}

	fileService := application.NewFileService(factory.NewStaticGeneratorFactory(cfg.Atomic))

	out.Start(fmt.Sprintf("Generating %s (%d bytes)", req.OutputPath, req.SizeBytes))
	err = fileService.CreateFile(ctx, req)
	out.Stop()
	if err != nil {
		out.Error(err.Error())
		return err
	}

	out.Success(application.Confirmation(req))
	return nil
}
