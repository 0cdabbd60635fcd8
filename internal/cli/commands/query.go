package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/snowshift-labs/snowshift/pkg/timetravel"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	DaysAgo int
	At      string
	Input   string
	Params  []string
	Format  string
	CSVOut  string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [SQL]",
		Short: "Run a query, optionally time-shifted",
		Long: `Run a single query against the configured connection. With --days or
--at the query is rewritten to read historical state via Snowflake Time
Travel; without either it runs unmodified.`,
		Example: `  # Run a query as-is
  snowshift query "select count(*) from transactions"

  # The same table, as of 7 days ago
  snowshift query "select count(*) from transactions" --days 7

  # As of an absolute point in time, exported to CSV
  snowshift query --input report.sql --at "2023-07-22 12:00:00" --csv report.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.DaysAgo, "days", "d", 0, "Query data as of this many days ago")
	cmd.Flags().StringVar(&opts.At, "at", "", "Query data as of this timestamp (overrides --days)")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")
	cmd.Flags().StringArrayVarP(&opts.Params, "param", "p", nil, "Named query parameter (name=value, repeatable)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, md")
	cmd.Flags().StringVar(&opts.CSVOut, "csv", "", "Also export the result to a CSV file")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	query, err := readSQL(cmd, args, opts.Input)
	if err != nil {
		return err
	}

	params, err := parseParams(opts.Params)
	if err != nil {
		return err
	}

	a, err := openAdapter(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx := cmd.Context()

	var result *timetravel.Result
	switch {
	case opts.At != "":
		result, err = timetravel.QueryAt(ctx, a, query, opts.At, params)
	case opts.DaysAgo != 0:
		result, err = timetravel.QueryAtOffset(ctx, a, query, opts.DaysAgo, params)
	default:
		table, execErr := a.Execute(ctx, query, params)
		if execErr != nil {
			err = &timetravel.QueryError{Query: query, Err: execErr}
		} else {
			result = &timetravel.Result{Table: table, Query: query}
		}
	}
	if err != nil {
		return err
	}

	if opts.CSVOut != "" {
		if err := writeCSVFile(result, opts.CSVOut); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Result written to %s (%d rows)\n", opts.CSVOut, result.RowCount())
	}

	return renderResults(cmd.OutOrStdout(), result.Table, resolveFormat(cmd, opts.Format))
}

func writeCSVFile(result *timetravel.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := result.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
