package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"portscout/scanner"
)

// Report is the frozen outcome of one scan run, ready for rendering.
type Report struct {
	Target   string // identifier as given by the user
	Addr     string // resolved address
	Findings []scanner.Finding
	Elapsed  time.Duration
	Partial  bool // the scan was interrupted before covering the range
}

// WriteSummary renders the report. Output is deterministic for a given
// Report: count of open ports, then one line per finding in ascending port
// order. Zero open ports is stated explicitly rather than as an empty table.
func WriteSummary(w io.Writer, r Report) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SCAN RESULTS SUMMARY")
	fmt.Fprintln(w, rule)

	if r.Partial {
		fmt.Fprintln(w, "Scan interrupted; results are partial.")
	}

	if len(r.Findings) == 0 {
		fmt.Fprintf(w, "No open ports found on %s (%s)\n", r.Target, r.Addr)
	} else {
		fmt.Fprintf(w, "Host: %s (%s)\n", r.Target, r.Addr)
		fmt.Fprintf(w, "Open ports found: %d\n\n", len(r.Findings))

		tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
		fmt.Fprintln(tw, "PORT\tSTATE\tSERVICE")
		for _, f := range r.Findings {
			fmt.Fprintf(tw, "%d/tcp\topen\t%s\n", f.Port, f.Service)
		}
		_ = tw.Flush()
	}

	if r.Elapsed > 0 {
		fmt.Fprintf(w, "\nScan completed in %.2f seconds\n", r.Elapsed.Seconds())
	}
	fmt.Fprintln(w, rule)
}
