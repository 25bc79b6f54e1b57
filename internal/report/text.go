package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/arloliu/coldplan/types"
)

const unreachable = "-"

// WriteText writes res as aligned plain text.
//
// Sections, in order: summary, per-index spans, plan table (when withTable is set)
// and the layout. Unreachable table cells are printed as "-".
//
// Parameters:
//   - w: Destination
//   - res: Planning result
//   - withTable: Include the full plan table
//
// Returns:
//   - error: First write error
func WriteText(w io.Writer, res *types.Result, withTable bool) error {
	doc := NewDocument(res, withTable)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "limits:\tmaxColdElems=%d maxColdWeight=%s maxPartitions=%d\n",
		doc.Limits.MaxColdElems, doc.Limits.MaxColdWeight, doc.Limits.MaxPartitions)
	fmt.Fprintf(tw, "elements:\t%d\n", doc.Elements)
	fmt.Fprintf(tw, "best hot weight:\t%s (%d cold partitions)\n", doc.BestHotWeight, doc.BestPartitions)
	fmt.Fprintf(tw, "fingerprint:\t%s\n", doc.Fingerprint)
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "index\tspan\treverse")
	for i, start := range doc.Reverse {
		end := unreachable
		if i < len(doc.Span) {
			end = fmt.Sprint(doc.Span[i])
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\n", i, end, start)
	}

	if withTable && len(doc.Table) > 0 {
		fmt.Fprintln(tw)
		header := []string{"elems"}
		for parts := range doc.Table[0] {
			header = append(header, fmt.Sprintf("p%d", parts))
		}
		fmt.Fprintln(tw, strings.Join(header, "\t"))

		for elems, row := range doc.Table {
			cells := []string{fmt.Sprint(elems)}
			for _, v := range row {
				if v == nil {
					cells = append(cells, unreachable)
				} else {
					cells = append(cells, *v)
				}
			}
			fmt.Fprintln(tw, strings.Join(cells, "\t"))
		}
	}

	fmt.Fprintln(tw)
	for _, r := range doc.Layout.Cold {
		fmt.Fprintf(tw, "cold\t[%d, %d)\tweight %s\n", r.Start, r.End, r.Weight)
	}
	fmt.Fprintf(tw, "hot\t%s\tweight %s\n", formatIndices(doc.Layout.Hot), doc.Layout.HotWeight)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func formatIndices(indices []int) string {
	if len(indices) == 0 {
		return "none"
	}

	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprint(idx)
	}

	return strings.Join(parts, ",")
}
