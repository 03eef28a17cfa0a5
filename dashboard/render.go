/*
render.go - Plain-text rendering of the report

Renders the Report view model with text/tabwriter. Sections with no rows
print an explicit "(no data)" line; disabled sections print their
missing-capability message.
*/
package dashboard

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/nwb/visit-engine/reconcile"
)

// Render writes the report as aligned text tables.
func Render(w io.Writer, r Report) error {
	fmt.Fprintf(w, "Field Visit Dashboard — as of %s\n\n", r.AsOf.Format("2006-01-02"))

	fmt.Fprintf(w, "Total visits:    %d\n", r.KPIs.TotalVisits)
	if r.KPIs.StatusKnown {
		fmt.Fprintf(w, "Realized:        %d\n", r.KPIs.Realized)
		fmt.Fprintf(w, "Planned:         %d\n", r.KPIs.Planned)
	} else {
		fmt.Fprintf(w, "Realized:        unavailable (missing column %s)\n", reconcile.ColStatus)
		fmt.Fprintf(w, "Planned:         unavailable (missing column %s)\n", reconcile.ColStatus)
	}
	fmt.Fprintf(w, "Unique clients:  %d\n", r.KPIs.UniqueClients)

	for _, sec := range r.Sections {
		fmt.Fprintf(w, "\n## %s\n", sec.Title)
		if sec.Disabled != "" {
			fmt.Fprintf(w, "%s\n", sec.Disabled)
			continue
		}
		if len(sec.Rows) == 0 {
			fmt.Fprintln(w, "(no data)")
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, row := range sec.Rows {
			for i, cell := range row {
				if i > 0 {
					fmt.Fprint(tw, "\t")
				}
				fmt.Fprint(tw, cell)
			}
			fmt.Fprintln(tw)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func itoa(n int) string { return strconv.Itoa(n) }

// rankCounts orders a counting map descending by count, ties by value.
func rankCounts(counts map[string]int) []reconcile.FieldCount {
	out := make([]reconcile.FieldCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, reconcile.FieldCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}
