package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/warden/internal/refconf"
)

// ValidationReport holds the result of validating a reference
// definitions file.
type ValidationReport struct {
	Valid      bool                    `json:"valid"`
	Path       string                  `json:"path"`
	References int                     `json:"references"`
	LinesRead  int                     `json:"lines_read"`
	Skipped    int                     `json:"skipped"`
	Duplicates int                     `json:"duplicates"`
	Malformed  []refconf.MalformedLine `json:"malformed,omitempty"`
}

// String renders the report for text output.
func (r ValidationReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d references, %d duplicates, %d malformed",
		r.Path, r.References, r.Duplicates, len(r.Malformed))
	for _, m := range r.Malformed {
		fmt.Fprintf(&b, "\n  line %d: %s", m.Line, m.Text)
	}
	return b.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [reference-file]",
		Short: "Validate a reference definitions file",
		Long: `Validate a reference definitions file without touching engine state.

Runs a full load pass and reports every line that fails the directive
grammar. Duplicate system names are reported as counts; they are not
errors. When no file is given the path is resolved from the host config.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runValidate(rootOpts, arg, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, arg string, cmd *cobra.Command) error {
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
	formatter.VerboseLog("validating %s", path)

	store, res, err := loadReferences(path, loaderLogger(opts, cmd))
	if err != nil {
		var le *refconf.LoadError
		if errors.As(err, &le) {
			formatter.Error(string(le.Code), le.Error(), nil)
		} else {
			formatter.Error("LOAD_FAILED", err.Error(), nil)
		}
		return NewExitError(ExitCommandError, "reference file unusable")
	}

	report := ValidationReport{
		Valid:      len(res.Malformed) == 0,
		Path:       path,
		References: store.Count(),
		LinesRead:  res.LinesRead,
		Skipped:    res.Skipped,
		Duplicates: res.Duplicates,
		Malformed:  res.Malformed,
	}

	if err := formatter.Success(report); err != nil {
		return err
	}
	if !report.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%d malformed definition(s)", len(report.Malformed)))
	}
	return nil
}
