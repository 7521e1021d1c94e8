package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/yourorg/qoz-dashboard/catalog"
	"github.com/yourorg/qoz-dashboard/client"
	"github.com/yourorg/qoz-dashboard/internal/search"
	"github.com/yourorg/qoz-dashboard/internal/session"
	"github.com/yourorg/qoz-dashboard/internal/view"
)

type clientFactory func() *client.Client

func addCriteriaFlags(fs *pflag.FlagSet) {
	fs.String("q", "", "search title, address or tract id")
	fs.Int64("price-min", 0, "minimum price in dollars")
	fs.Int64("price-max", search.PriceCeiling, "maximum price in dollars")
	fs.Float64("acreage-min", 0, "minimum acreage")
	fs.Float64("acreage-max", search.AcreageCeiling, "maximum acreage")
	fs.String("zoning", search.AllZoning, "zoning tag or \"all\"")
	fs.Float64("max-distance", search.DistanceCeiling, "maximum miles from "+catalog.ReferencePoint)
	fs.Bool("qoz-only", false, "only QOZ eligible properties")
}

// patchFromFlags returns a patch holding only the flags the user set.
func patchFromFlags(fs *pflag.FlagSet) session.Patch {
	var p session.Patch
	if fs.Changed("q") {
		v, _ := fs.GetString("q")
		p.SearchTerm = &v
	}
	if fs.Changed("price-min") {
		v, _ := fs.GetInt64("price-min")
		p.PriceMin = &v
	}
	if fs.Changed("price-max") {
		v, _ := fs.GetInt64("price-max")
		p.PriceMax = &v
	}
	if fs.Changed("acreage-min") {
		v, _ := fs.GetFloat64("acreage-min")
		p.AcreageMin = &v
	}
	if fs.Changed("acreage-max") {
		v, _ := fs.GetFloat64("acreage-max")
		p.AcreageMax = &v
	}
	if fs.Changed("zoning") {
		v, _ := fs.GetString("zoning")
		p.Zoning = &v
	}
	if fs.Changed("max-distance") {
		v, _ := fs.GetFloat64("max-distance")
		p.MaxDistance = &v
	}
	if fs.Changed("qoz-only") {
		v, _ := fs.GetBool("qoz-only")
		p.QOZOnly = &v
	}
	return p
}

func SearchCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List properties matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Search(cmd.Context(), patchFromFlags(cmd.Flags()))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			writeStats(out, res.Stats)
			writeTable(out, res.Properties)
			return nil
		},
	}
	addCriteriaFlags(cmd.Flags())
	return cmd
}

func ZoningCmd(newClient clientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "zoning",
		Short: "List the zoning options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := newClient().Zoning(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", t, view.ZoningLabel(t))
			}
			return nil
		},
	}
}

func MapCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Draw matching properties on the schematic map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newClient().Search(cmd.Context(), patchFromFlags(cmd.Flags()))
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetInt("width")
			if !cmd.Flags().Changed("width") {
				width = terminalWidth(width)
			}
			fmt.Fprint(cmd.OutOrStdout(), view.TextMap(res.Properties, width))
			writeStats(cmd.OutOrStdout(), res.Stats)
			return nil
		},
	}
	addCriteriaFlags(cmd.Flags())
	cmd.Flags().Int("width", 62, "map width in columns; defaults to the terminal width")
	return cmd
}

func SessionCmd(newClient clientFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Create and update dashboard sessions",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Start a session with default filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newClient().CreateSession(cmd.Context())
			if err != nil {
				return err
			}
			writeSession(cmd.OutOrStdout(), v)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a session and its matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newClient().GetSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeSession(cmd.OutOrStdout(), v)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Change a session's filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := patchFromFlags(cmd.Flags())
			if cmd.Flags().Changed("show-filters") {
				v, _ := cmd.Flags().GetBool("show-filters")
				p.ShowFilters = &v
			}
			if p.Empty() {
				return fmt.Errorf("nothing to set; pass at least one filter flag")
			}
			v, err := newClient().UpdateSession(cmd.Context(), args[0], p)
			if err != nil {
				return err
			}
			writeSession(cmd.OutOrStdout(), v)
			return nil
		},
	}
	addCriteriaFlags(setCmd.Flags())
	setCmd.Flags().Bool("show-filters", false, "open or close the filter panel")

	cmd.AddCommand(newCmd, showCmd, setCmd)
	return cmd
}

func terminalWidth(def int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return def
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return def
	}
	return w
}

func writeStats(w io.Writer, s search.Stats) {
	fmt.Fprintf(w, "total %d  qoz eligible %d  avg price %s  total acreage %s\n",
		s.Total, s.QOZEligible, view.Millions(s.AvgPrice, 1), fmt.Sprintf("%.1f", s.TotalAcreage))
}

func writeTable(w io.Writer, props []catalog.Property) {
	if len(props) == 0 {
		fmt.Fprintln(w, "No properties match your filters")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tACRES\tZONING\tMILES\tQOZ")
	for _, p := range props {
		qoz := "no"
		if p.QOZEligible {
			qoz = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Title, view.Millions(float64(p.Price), 2), view.Number(p.Acreage), p.Zoning, view.Number(p.Distance), qoz)
	}
	_ = tw.Flush()
}

func writeSession(w io.Writer, v *client.SessionView) {
	fmt.Fprintf(w, "session %s\n", v.Session.ID)
	writeStats(w, v.Stats)
	writeTable(w, v.Properties)
}
