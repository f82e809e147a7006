package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// DefaultPrecision is the number of fractional digits decoded values are
// rounded to.
const DefaultPrecision = 20

// DecodeResult is the value of one bit pattern.
type DecodeResult struct {
	Input  string `json:"input"`
	Layout string `json:"layout"`
	Value  string `json:"value"`
}

// DecodeResults prints one value per line.
type DecodeResults struct {
	Results []DecodeResult `json:"results"`
}

func (rs DecodeResults) String() string {
	lines := make([]string, 0, len(rs.Results))
	for _, r := range rs.Results {
		lines = append(lines, r.Value)
	}

	return strings.Join(lines, "\n")
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "decode <bits>...",
		Short: "Decode bit patterns as decimal numerals",
		Long: `Decode bit patterns of the selected layout as decimal numerals.

Patterns are read most significant bit first, or as hexadecimal with --hex,
and must be exactly as wide as the layout. Values are rounded half to even
to --precision fractional digits with trailing zeros removed.`,
		Example: `  binfloat decode 01000000010010001111010111000011
  binfloat decode -l e4m3 -p 2 01110111
  binfloat decode --hex -l float16 7bff`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(rootOpts, args, precision, cmd)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", DefaultPrecision, "fractional digits")

	return cmd
}

func runDecode(opts *RootOptions, patterns []string, precision int, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger(cmd)

	c, err := opts.codec(logger)
	if err != nil {
		return formatter.Fail(opts.LayoutsFile, err)
	}

	name := opts.layoutName()

	l, err := c.Layout(name)
	if err != nil {
		return formatter.Fail(name, err)
	}

	var results DecodeResults

	for _, pattern := range patterns {
		var value string
		if opts.Hex {
			value, err = c.DecodeHex(pattern, name, precision)
		} else {
			value, err = c.Decode(pattern, name, precision)
		}
		if err != nil {
			return formatter.Fail(pattern, err)
		}

		logger.Debug("decoded", "input", pattern, "layout", name, "value", value)

		results.Results = append(results.Results, DecodeResult{
			Input:  pattern,
			Layout: l.String(),
			Value:  value,
		})
	}

	return formatter.Success(results)
}
