package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/snowshift-labs/snowshift/pkg/chart"
	"github.com/snowshift-labs/snowshift/pkg/timetravel"
)

// CompareOptions holds options for the compare command.
type CompareOptions struct {
	DaysAgo int
	At      string
	Input   string
	Params  []string
	Format  string

	ChartOut        string
	XColumn         string
	YColumn         string
	Title           string
	Kind            string
	CurrentLabel    string
	HistoricalLabel string
	DateFormat      string
}

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	opts := &CompareOptions{}

	cmd := &cobra.Command{
		Use:   "compare [SQL]",
		Short: "Run a query against current and historical data",
		Long: `Run the same query twice: once rewritten with a Snowflake Time Travel
clause to read historical state, once unmodified against current data.
Both result sets are rendered, and optionally charted against each other.

The historical query runs first, then the current one. The two are
independent sequential calls; data changing in between is inherent to
comparing against a live system.`,
		Example: `  # Compare current revenue against 7 days ago
  snowshift compare "select period, total from revenue_monthly order by period" --days 7

  # Compare against an absolute point in time
  snowshift compare --input revenue.sql --at "2023-07-22 12:00:00"

  # Bind named query parameters
  snowshift compare --input revenue.sql --days 7 --param practice_id=12345

  # Write an HTML comparison chart
  snowshift compare --input revenue.sql --days 7 \
    --chart revenue.html -x PERIOD -y SUM --title "Revenue: now vs 7 days ago"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.DaysAgo, "days", "d", 7, "Days ago to compare against")
	cmd.Flags().StringVar(&opts.At, "at", "", "Absolute timestamp to compare against (overrides --days)")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")
	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "Named query parameter (name=value, repeatable)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, md")

	cmd.Flags().StringVar(&opts.ChartOut, "chart", "", "Write an HTML comparison chart to this path")
	cmd.Flags().StringVarP(&opts.XColumn, "x-column", "x", "", "Column for the chart x-axis")
	cmd.Flags().StringVarP(&opts.YColumn, "y-column", "y", "", "Column for the chart y-axis")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title")
	cmd.Flags().StringVar(&opts.Kind, "kind", "both", "Chart kind: bars, lines, or both")
	cmd.Flags().StringVar(&opts.CurrentLabel, "current-label", "", "Label for the current series")
	cmd.Flags().StringVar(&opts.HistoricalLabel, "historical-label", "", "Label for the historical series")
	cmd.Flags().StringVar(&opts.DateFormat, "date-format", "", "Axis label format for date x-axis values")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string, opts *CompareOptions) error {
	query, err := readSQL(cmd, args, opts.Input)
	if err != nil {
		return err
	}

	params, err := parseParams(opts.Params)
	if err != nil {
		return err
	}

	if opts.ChartOut != "" && (opts.XColumn == "" || opts.YColumn == "") {
		return fmt.Errorf("--chart requires both --x-column and --y-column")
	}

	qualifier := timetravel.DaysAgo(opts.DaysAgo)
	if opts.At != "" {
		qualifier = timetravel.AtLiteral(opts.At)
	}

	a, err := openAdapter(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	logger := GetLogger(cmd.Context())
	logger.Debug("comparing", slog.String("qualifier", qualifier.String()))

	cmp, err := timetravel.CompareAt(cmd.Context(), a, query, qualifier, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := resolveFormat(cmd, opts.Format)

	_, _ = fmt.Fprintln(out, "Current:")
	if err := renderResults(out, cmp.Current, format); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\nHistorical (%s):\n", qualifier)
	if err := renderResults(out, cmp.Historical, format); err != nil {
		return err
	}

	if opts.ChartOut != "" {
		c, err := chart.Comparison(cmp.Current, cmp.Historical, opts.XColumn, opts.YColumn, chart.Options{
			CurrentLabel:    opts.CurrentLabel,
			HistoricalLabel: opts.HistoricalLabel,
			Title:           opts.Title,
			Kind:            chart.Kind(opts.Kind),
			DateFormat:      opts.DateFormat,
		})
		if err != nil {
			return err
		}
		if err := c.WriteHTML(opts.ChartOut); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "\nChart written to %s\n", opts.ChartOut)
	}

	return nil
}
