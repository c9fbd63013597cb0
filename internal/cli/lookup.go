package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/warden/internal/refconf"
)

// LookupReport holds the result of a successful reference lookup.
type LookupReport struct {
	System string `json:"system"`
	URL    string `json:"url,omitempty"`
}

// String renders the report for text output.
func (r LookupReport) String() string {
	if r.URL == "" {
		return r.System
	}
	return fmt.Sprintf("%s %s", r.System, r.URL)
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <name> [reference-file]",
		Short: "Look up a reference system by name",
		Long: `Look up a reference system in a definitions file.

The name is matched case-insensitively against the canonical system
names. When no file is given the path is resolved from the host config.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 2 {
				arg = args[1]
			}
			return runLookup(rootOpts, args[0], arg, cmd)
		},
	}

	return cmd
}

func runLookup(opts *RootOptions, name, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	path, err := resolveReferencePath(opts, arg)
	if err != nil {
		formatter.Error("CONFIG_ERROR", err.Error(), nil)
		return NewExitError(ExitCommandError, "host config unusable")
	}

	store, _, err := loadReferences(path, loaderLogger(opts, cmd))
	if err != nil {
		var le *refconf.LoadError
		if errors.As(err, &le) {
			formatter.Error(string(le.Code), le.Error(), nil)
		} else {
			formatter.Error("LOAD_FAILED", err.Error(), nil)
		}
		return NewExitError(ExitCommandError, "reference file unusable")
	}
	formatter.VerboseLog("loaded %d reference(s) from %s", store.Count(), path)

	ref, ok := store.Lookup(name)
	if !ok {
		formatter.Error("NOT_FOUND", fmt.Sprintf("reference system %q not defined", name), nil)
		return NewExitError(ExitFailure, "reference not found")
	}

	return formatter.Success(LookupReport{System: ref.System, URL: ref.URL})
}
