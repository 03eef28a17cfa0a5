/*
main.go - visitdash CLI entry point

PURPOSE:
  Loads the client roster and visit log, reconciles them, and renders the
  dashboard views or exports the filtered table.

COMMANDS:
  report    Full dashboard: KPIs, summaries, charts-as-tables
  export    Filtered reconciled table as CSV (or XLSX with --xlsx)
  sla       Per-client SLA gap table
  missing   Roster clients with no qualifying visit
  upcoming  Planned visits inside the scheduling window

COMMON FLAGS:
  --visits / --clients   Source files (.xlsx, .xls or .csv)
  --client / --responsible / --agents / --from / --to   Filters
  --as-of                Reference date for day-gap views (default today)
  --config               Optional YAML policy file

EXAMPLES:
  visitdash report --visits fVisitas.xlsx --clients dClientes.xlsx
  visitdash export --visits v.csv --clients c.csv --from 2024-01-01 --to 2024-03-31 > out.csv
  visitdash missing --visits v.xlsx --clients c.xlsx --responsible R1

SEE ALSO:
  - dashboard: View models and rendering
  - ingest: Loading and reconciliation
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nwb/visit-engine/config"
	"github.com/nwb/visit-engine/dashboard"
	"github.com/nwb/visit-engine/ingest"
	"github.com/nwb/visit-engine/reconcile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	visitsPath  string
	clientsPath string
	configPath  string

	clientCode      string
	responsibleCode string
	agents          []string
	from            string
	to              string
	asOf            string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "visitdash",
		Short:         "Field-visit reconciliation dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.visitsPath, "visits", "", "visit log file (.xlsx, .xls or .csv)")
	pf.StringVar(&opts.clientsPath, "clients", "", "client roster file (.xlsx, .xls or .csv)")
	pf.StringVar(&opts.configPath, "config", "", "optional YAML policy file")
	pf.StringVar(&opts.clientCode, "client", "", "filter: exact client code")
	pf.StringVar(&opts.responsibleCode, "responsible", "", "filter: exact responsible code")
	pf.StringSliceVar(&opts.agents, "agents", nil, "filter: responsible names (repeatable)")
	pf.StringVar(&opts.from, "from", "", "filter: range start (2006-01-02)")
	pf.StringVar(&opts.to, "to", "", "filter: range end, inclusive (2006-01-02)")
	pf.StringVar(&opts.asOf, "as-of", "", "reference date for day-gap views (default today)")

	root.AddCommand(
		newReportCmd(opts),
		newExportCmd(opts),
		newSLACmd(opts),
		newMissingCmd(opts),
		newUpcomingCmd(opts),
	)
	return root
}

// load resolves flags into a reconciled session, config, criteria and
// reference date.
func load(opts *rootOptions) (*ingest.Session, config.Config, reconcile.Criteria, time.Time, error) {
	var zero time.Time

	if opts.visitsPath == "" || opts.clientsPath == "" {
		return nil, config.Config{}, reconcile.Criteria{}, zero,
			errors.New("--visits and --clients are required")
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, cfg, reconcile.Criteria{}, zero, err
	}

	session, err := ingest.LoadAndReconcile(opts.visitsPath, opts.clientsPath)
	if err != nil {
		return nil, cfg, reconcile.Criteria{}, zero, err
	}

	criteria := reconcile.Criteria{
		ClientCode:      opts.clientCode,
		ResponsibleCode: opts.responsibleCode,
		Responsibles:    opts.agents,
	}
	if opts.from != "" || opts.to != "" {
		if opts.from == "" || opts.to == "" {
			return nil, cfg, criteria, zero, errors.New("--from and --to must be given together")
		}
		start, err := parseFlagDate(opts.from)
		if err != nil {
			return nil, cfg, criteria, zero, err
		}
		end, err := parseFlagDate(opts.to)
		if err != nil {
			return nil, cfg, criteria, zero, err
		}
		criteria.DateRange = &reconcile.DateRange{Start: start, End: end}
	}

	asOf := time.Now().UTC()
	if opts.asOf != "" {
		if asOf, err = parseFlagDate(opts.asOf); err != nil {
			return nil, cfg, criteria, zero, err
		}
	}
	return session, cfg, criteria, asOf, nil
}

func parseFlagDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want 2006-01-02", s)
	}
	return t, nil
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Render the full dashboard as text",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cfg, criteria, asOf, err := load(opts)
			if err != nil {
				return err
			}
			report := dashboard.BuildReport(session, criteria, cfg, asOf)
			return dashboard.Render(cmd.OutOrStdout(), report)
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var xlsxPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered reconciled table (CSV to stdout)",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, criteria, _, err := load(opts)
			if err != nil {
				return err
			}
			filtered := reconcile.Apply(session.Reconciled, criteria)
			if xlsxPath != "" {
				f, err := os.Create(xlsxPath)
				if err != nil {
					return err
				}
				defer f.Close()
				return dashboard.ExportXLSX(f, filtered)
			}
			return dashboard.ExportCSV(cmd.OutOrStdout(), filtered)
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write an XLSX workbook to this path instead of CSV")
	return cmd
}

func newSLACmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sla",
		Short: "Per-client SLA gap table",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, _, criteria, asOf, err := load(opts)
			if err != nil {
				return err
			}
			filtered := reconcile.Apply(session.Reconciled, criteria)
			rows := reconcile.SLABreachTable(filtered, asOf)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no data)")
				return nil
			}
			for _, row := range rows {
				target := row.TargetDays.String()
				if target == "" {
					target = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\n",
					row.Client, target, row.DaysSince, row.Status)
			}
			return nil
		},
	}
}

func newMissingCmd(opts *rootOptions) *cobra.Command {
	var semantic string
	cmd := &cobra.Command{
		Use:   "missing",
		Short: "Roster clients with no qualifying visit",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cfg, _, _, err := load(opts)
			if err != nil {
				return err
			}
			if semantic == "" {
				semantic = cfg.MissingSemantic
			}
			names := reconcile.MissingClients(session.Clients, session.Visits,
				opts.responsibleCode, reconcile.MissingSemantic(semantic))
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no data)")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&semantic, "semantic", "",
		"never_scheduled (default) or never_completed")
	return cmd
}

func newUpcomingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "Planned visits inside the scheduling window",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, cfg, criteria, asOf, err := load(opts)
			if err != nil {
				return err
			}
			filtered := reconcile.Apply(session.Reconciled, criteria)
			rows := reconcile.PlannedUpcoming(filtered, asOf, cfg.UpcomingWindowDays)
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no data)")
				return nil
			}
			for _, rec := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					rec.PlannedDate, rec.ClientName, rec.ResponsibleName, rec.Focus)
			}
			return nil
		},
	}
}
