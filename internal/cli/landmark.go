package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/binfloat/bitfield"
	"github.com/calebcase/binfloat/codec"
	"github.com/calebcase/binfloat/special"
)

// LandmarkOptions holds the flags of the landmark command.
type LandmarkOptions struct {
	Negative  bool
	Signaling bool
	Payload   string
	Precision int
}

// LandmarkEntry is one row of the landmark table.
type LandmarkEntry struct {
	Kind  string `json:"kind"`
	Bits  string `json:"bits"`
	Hex   string `json:"hex"`
	Value string `json:"value"`
}

// LandmarkTable lists the pattern of every special value of a layout.
type LandmarkTable struct {
	Layout  string          `json:"layout"`
	Entries []LandmarkEntry `json:"entries"`

	hex bool
}

func (t LandmarkTable) String() string {
	lines := make([]string, 0, len(t.Entries))
	for _, e := range t.Entries {
		pattern := e.Bits
		if t.hex {
			pattern = e.Hex
		}

		lines = append(lines, fmt.Sprintf("%-18s %s %s", e.Kind, pattern, e.Value))
	}

	return strings.Join(lines, "\n")
}

// NewLandmarkCommand creates the landmark command.
func NewLandmarkCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LandmarkOptions{}

	cmd := &cobra.Command{
		Use:   "landmark [kind]",
		Short: "Construct special values and landmarks",
		Long: `Construct the pattern of a special value or landmark of the selected
layout and show it like inspect. Without a kind every special value and
landmark of the layout is listed.

Kinds: zero, infinity, nan, smallest-subnormal, largest-subnormal,
smallest-normal, largest-normal, largest-below-one, one and
smallest-above-one.`,
		Example: `  binfloat landmark
  binfloat landmark -l e5m2 largest-normal
  binfloat landmark --negative zero
  binfloat landmark --signaling --payload 101 nan`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runLandmarkTable(rootOpts, opts, cmd)
			}
			return runLandmark(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Negative, "negative", false, "negative zero or infinity")
	cmd.Flags().BoolVar(&opts.Signaling, "signaling", false, "signaling NaN")
	cmd.Flags().StringVar(&opts.Payload, "payload", "", "NaN payload bits")
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", DefaultPrecision, "fractional digits")

	return cmd
}

// value returns the special value named by kind with the flags applied.
func (o *LandmarkOptions) value(kind string) (v special.Value, err error) {
	k, err := special.ParseKind(kind)
	if err != nil {
		return v, err
	}

	switch k {
	case special.KindZero:
		return special.Zero(o.Negative), nil
	case special.KindInfinity:
		return special.Infinity(o.Negative), nil
	case special.KindNaN:
		payload := bitfield.New(0)
		if o.Payload != "" {
			payload, err = bitfield.Parse(o.Payload)
			if err != nil {
				return v, codec.Error.New("%w: payload: %v", codec.ErrMalformed, err)
			}
		}

		return special.NaN(o.Signaling, payload), nil
	}

	return special.Landmark(k), nil
}

func runLandmark(rootOpts *RootOptions, opts *LandmarkOptions, kind string, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd)

	c, err := rootOpts.codec(logger)
	if err != nil {
		return formatter.Fail(rootOpts.LayoutsFile, err)
	}

	v, err := opts.value(kind)
	if err != nil {
		return formatter.Fail(kind, err)
	}

	info, err := c.Construct(v, rootOpts.layoutName(), opts.Precision)
	if err != nil {
		return formatter.Fail(kind, err)
	}

	logger.Debug("constructed", "value", v.String(), "layout", rootOpts.layoutName(), "bits", info.Bits)

	return formatter.Success(InspectResult{info})
}

func runLandmarkTable(rootOpts *RootOptions, opts *LandmarkOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)
	logger := rootOpts.logger(cmd)

	c, err := rootOpts.codec(logger)
	if err != nil {
		return formatter.Fail(rootOpts.LayoutsFile, err)
	}

	name := rootOpts.layoutName()

	l, err := c.Layout(name)
	if err != nil {
		return formatter.Fail(name, err)
	}

	table := LandmarkTable{
		Layout: l.String(),
		hex:    rootOpts.Hex,
	}

	for _, k := range special.Kinds {
		v, err := opts.value(k.String())
		if err != nil {
			return formatter.Fail(k.String(), err)
		}

		info, err := c.Construct(v, name, opts.Precision)
		if err != nil {
			return formatter.Fail(k.String(), err)
		}

		table.Entries = append(table.Entries, LandmarkEntry{
			Kind:  v.String(),
			Bits:  info.Bits,
			Hex:   info.Hex,
			Value: info.Value,
		})
	}

	return formatter.Success(table)
}
