package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/warden/internal/config"
	"github.com/roach88/warden/internal/refconf"
)

// resolveReferencePath picks the reference definitions file for a
// command: an explicit argument beats the host config override, which
// beats the compiled-in default.
func resolveReferencePath(opts *RootOptions, arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if opts.Config != "" {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			return "", err
		}
		return cfg.ReferencePath(), nil
	}
	var cfg config.Config
	return cfg.ReferencePath(), nil
}

// loaderLogger routes load diagnostics to stderr in verbose mode and
// discards them otherwise, so command output stays the single report.
func loaderLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	if opts.Verbose {
		return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// loadReferences runs one complete load of path into a fresh store.
func loadReferences(path string, logger *slog.Logger) (*refconf.Store, *refconf.Result, error) {
	store := refconf.NewStore()
	res, err := refconf.NewLoader(
		refconf.WithPath(path),
		refconf.WithLogger(logger),
	).Load(store)
	if err != nil {
		return nil, nil, err
	}
	return store, res, nil
}
