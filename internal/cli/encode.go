package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// EncodeResult is the bit pattern of one numeral.
type EncodeResult struct {
	Input  string `json:"input"`
	Layout string `json:"layout"`
	Bits   string `json:"bits"`
	Hex    string `json:"hex,omitempty"`
}

// EncodeResults prints one pattern per line.
type EncodeResults struct {
	Results []EncodeResult `json:"results"`

	hex bool
}

func (rs EncodeResults) String() string {
	lines := make([]string, 0, len(rs.Results))
	for _, r := range rs.Results {
		if rs.hex {
			lines = append(lines, r.Hex)
			continue
		}
		lines = append(lines, r.Bits)
	}

	return strings.Join(lines, "\n")
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <numeral>...",
		Short: "Encode decimal numerals as bit patterns",
		Long: `Encode decimal numerals as bit patterns of the selected layout.

Numerals are read exactly and rounded once to the nearest pattern, ties
away from zero. "inf", "-infinity" and "nan" in any case encode the special
values. Patterns are written most significant bit first, or in hexadecimal
with --hex.`,
		Example: `  binfloat encode 3.14
  binfloat encode -l fp8-e4m3 0.1 -- -2.5
  binfloat encode --hex -l double 0.1`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runEncode(opts *RootOptions, numerals []string, cmd *cobra.Command) error {
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

	results := EncodeResults{hex: opts.Hex}

	for _, numeral := range numerals {
		bits, err := c.Encode(numeral, name)
		if err != nil {
			return formatter.Fail(numeral, err)
		}

		r := EncodeResult{
			Input:  numeral,
			Layout: l.String(),
			Bits:   bits,
		}

		if opts.Hex {
			r.Hex, err = c.EncodeHex(numeral, name)
			if err != nil {
				return formatter.Fail(numeral, err)
			}
		}

		logger.Debug("encoded", "input", numeral, "layout", name, "bits", bits)

		results.Results = append(results.Results, r)
	}

	return formatter.Success(results)
}
