package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/polygon/internal/describe"
	"github.com/roach88/polygon/internal/polygon"
)

// RootOptions holds the flags of the command.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// ValidFormats defines the recognized output formats. Anything else falls back to text.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the polygon CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command bound to opts.
// Flag parsing writes into opts, so callers can inspect it after Execute.
//
// Cobra's own flag parsing is disabled: flags are parsed leniently in the
// run function, so no argument can fail the command or replace the
// catalog with usage text.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polygon",
		Short: "Describe the polygon catalog",
		Long: `Describe every polygon in the built-in catalog.

Prints one line per polygon with its type name and area:

  Polygon is a square with area 4 m2.
  Polygon is a rectangle with area 12 m2.

Arguments never change the output lines or the exit status. --verbose
adds debug logs on stderr and --format json switches stdout to a single
JSON response; anything unrecognized or malformed is ignored.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(opts, cmd, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	return cmd
}

// Execute runs the root command with args and returns the process exit code.
// Every argument list yields ExitSuccess; only a failed write to stdout
// returns ExitFailure.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := NewRootCommandWithOptions(opts)
	// A leading "--" keeps cobra from resolving any argument as its hidden
	// completion command; runDescribe drops it again.
	cmd.SetArgs(append([]string{"--"}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	formatter := &OutputFormatter{Format: "text", Writer: stderr}
	if opts.Format == "json" {
		formatter.Format = "json"
		formatter.Writer = stdout
	}
	_ = formatter.Error(ErrCodeFailure, err.Error())
	return GetExitCode(err)
}

// parseFlags reads the known flags from args and ignores everything else.
// Parsing stops at the first malformed flag; flags after it keep their defaults.
func parseFlags(cmd *cobra.Command, opts *RootOptions, args []string) error {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}

	flags := cmd.Flags()
	flags.ParseErrorsWhitelist.UnknownFlags = true
	err := flags.Parse(args)

	if !isValidFormat(opts.Format) {
		opts.Format = "text"
	}
	return err
}

func runDescribe(opts *RootOptions, cmd *cobra.Command, args []string) error {
	parseErr := parseFlags(cmd, opts, args)

	gen := opts.RunIDs
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	runID := gen.Generate()
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose).With("run_id", runID)
	if parseErr != nil {
		logger.Debug("ignoring arguments", "error", parseErr)
	}

	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		TraceID: runID,
	}

	polygons := describe.BuildPolygons()
	logger.Debug("catalog built", "polygons", len(polygons), "format", opts.Format)

	if opts.Format == "json" {
		if err := formatter.Success(describe.DescribeAll(polygons)); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
	} else {
		logPolygons(logger, polygons)
		if err := describe.PrintAll(formatter.Writer, polygons); err != nil {
			return WrapExitError(ExitFailure, "failed to write output", err)
		}
	}

	logger.Debug("catalog described", "polygons", len(polygons))
	return nil
}

func logPolygons(logger *slog.Logger, polygons []polygon.Polygon) {
	for i, p := range polygons {
		logger.Debug("describing polygon", "index", i, "type", polygon.TypeName(p))
	}
}

// isValidFormat checks if the format is one of the recognized values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
