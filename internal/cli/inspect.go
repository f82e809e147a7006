package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/binfloat/codec"
)

// InspectResult is the field by field description of one pattern.
type InspectResult struct {
	codec.Info
}

func (r InspectResult) String() string {
	special := r.Special
	if special == "" {
		special = "-"
	}

	var sb strings.Builder

	row := func(name, format string, args ...any) {
		fmt.Fprintf(&sb, "%-12s %s\n", name, fmt.Sprintf(format, args...))
	}

	row("bits", "%s", r.Bits)
	row("hex", "%s", r.Hex)
	row("layout", "%s", r.Layout)
	row("sign", "%s", r.Sign)
	row("exponent", "%s (field %d, power %d)", r.Exponent, r.ExponentField, r.Power)
	row("mantissa", "%s", r.Mantissa)
	row("significand", "%s", r.Significand)
	row("subnormal", "%t", r.Subnormal)
	row("special", "%s", special)
	row("value", "%s", r.Value)

	return strings.TrimSuffix(sb.String(), "\n")
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "inspect <bits>",
		Short: "Show the fields of a bit pattern",
		Long: `Show the sign, exponent and mantissa fields of a bit pattern together
with its significand, the special value or landmark it encodes and its
decimal value.`,
		Example: `  binfloat inspect 01000000010010001111010111000011
  binfloat inspect --hex -l half 0001`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], precision, cmd)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", DefaultPrecision, "fractional digits")

	return cmd
}

func runInspect(opts *RootOptions, pattern string, precision int, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger(cmd)

	c, err := opts.codec(logger)
	if err != nil {
		return formatter.Fail(opts.LayoutsFile, err)
	}

	name := opts.layoutName()

	var info codec.Info
	if opts.Hex {
		info, err = c.InspectHex(pattern, name, precision)
	} else {
		info, err = c.Inspect(pattern, name, precision)
	}
	if err != nil {
		return formatter.Fail(pattern, err)
	}

	logger.Debug("inspected", "input", pattern, "layout", name, "special", info.Special)

	return formatter.Success(InspectResult{info})
}
