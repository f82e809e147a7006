package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/calebcase/binfloat"
	"github.com/calebcase/binfloat/layout"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	Layout      string
	LayoutsFile string
	Hex         bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// DefaultLayout is used when --layout is not given.
const DefaultLayout = "float32"

// NewRootCommand creates the root command for the binfloat CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "binfloat",
		Short: "Binary floating point explorer",
		Long: `Convert decimal numerals to the bit patterns of binary floating point
layouts and back.

Standard layouts are float16, float32, float64, float128, float256,
fp8-e4m3, fp8-e5m2, bfloat16 and tensorfloat32. Custom layouts are read
from a YAML file given with --layouts-file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				err := fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				fmt.Fprintf(cmd.ErrOrStderr(), "Error [%s]: %v\n", ErrCodeGeneric, err)
				return WrapExitError(ExitCommandError, ErrCodeGeneric, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Layout, "layout", "l", DefaultLayout, "layout name or alias")
	cmd.PersistentFlags().StringVar(&opts.LayoutsFile, "layouts-file", "", "YAML file with custom layouts")
	cmd.PersistentFlags().BoolVar(&opts.Hex, "hex", false, "bit patterns are hexadecimal")

	cmd.AddCommand(NewEncodeCommand(opts))
	cmd.AddCommand(NewDecodeCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewLandmarkCommand(opts))
	cmd.AddCommand(NewLayoutsCommand(opts))

	return cmd
}

// Execute runs cmd and returns the process exit code. Errors the commands did
// not report themselves, such as cobra usage errors, are printed to the error
// stream as command errors.
func Execute(cmd *cobra.Command) int {
	err := cmd.Execute()

	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		err = WrapExitError(ExitCommandError, ErrCodeGeneric, err)
	}

	return GetExitCode(err)
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Text errors go to stderr
		Verbose:   o.Verbose,
	}
}

// logger returns a text logger writing to the command's error stream. Debug
// messages are enabled by --verbose.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))
}

// codec returns a codec over the standard layouts and the layouts from
// --layouts-file.
func (o *RootOptions) codec(logger *slog.Logger) (*binfloat.Codec, error) {
	r := layout.NewRegistry()

	if o.LayoutsFile != "" {
		names, err := r.ParseFile(o.LayoutsFile)
		if err != nil {
			return nil, err
		}

		logger.Debug("layouts loaded", "file", o.LayoutsFile, "names", names)
	}

	return binfloat.New(r), nil
}

// layoutName returns the --layout value, or the default when the options
// were not filled in by the root command.
func (o *RootOptions) layoutName() string {
	if o.Layout == "" {
		return DefaultLayout
	}

	return o.Layout
}
