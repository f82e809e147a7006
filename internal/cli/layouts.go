package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// LayoutEntry describes one registered layout.
type LayoutEntry struct {
	Name     string   `json:"name"`
	Sign     int      `json:"sign"`
	Exponent int      `json:"exponent"`
	Mantissa int      `json:"mantissa"`
	Bias     int64    `json:"bias"`
	Size     int      `json:"size"`
	Aliases  []string `json:"aliases,omitempty"`
}

// LayoutList prints one layout per line.
type LayoutList struct {
	Layouts []LayoutEntry `json:"layouts"`
}

func (ls LayoutList) String() string {
	lines := make([]string, 0, len(ls.Layouts))
	for _, e := range ls.Layouts {
		line := fmt.Sprintf("%-14s %3d bits  sign %d  exponent %2d  mantissa %3d  bias %d",
			e.Name, e.Size, e.Sign, e.Exponent, e.Mantissa, e.Bias)
		if len(e.Aliases) > 0 {
			line += "  (" + strings.Join(e.Aliases, ", ") + ")"
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// NewLayoutsCommand creates the layouts command.
func NewLayoutsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List the available layouts",
		Long: `List the standard layouts with their aliases followed by the custom
layouts read from --layouts-file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayouts(rootOpts, cmd)
		},
	}

	return cmd
}

func runLayouts(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger(cmd)

	c, err := opts.codec(logger)
	if err != nil {
		return formatter.Fail(opts.LayoutsFile, err)
	}

	r := c.Layouts()

	var list LayoutList

	for _, name := range r.Names() {
		l, err := c.Layout(name)
		if err != nil {
			return formatter.Fail(name, err)
		}

		list.Layouts = append(list.Layouts, LayoutEntry{
			Name:     name,
			Sign:     l.SignWidth(),
			Exponent: l.ExponentWidth(),
			Mantissa: l.MantissaWidth(),
			Bias:     l.Bias(),
			Size:     l.Size(),
			Aliases:  r.Aliases(name),
		})
	}

	return formatter.Success(list)
}
