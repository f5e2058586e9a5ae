package evaluation

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
)

// WriteTable renders a run's outcome as aligned text, one section per
// split with the per-estimator statistic means across datasets and the
// matching mean fractional ranks.
func WriteTable(ev *Evaluation, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Estimator Comparison (%d datasets, %d resamples) ===\n",
		len(ev.Datasets), len(ev.Resamples))

	for _, split := range splitOrder(ev.Statistics) {
		fmt.Fprintf(tw, "\n--- Split: %s ---\n\n", split)
		writeMeansTable(tw, ev, split)
		writeRanksTable(tw, ev, split)
	}

	tw.Flush()
}

func writeMeansTable(tw *tabwriter.Writer, ev *Evaluation, split string) {
	stats := splitStatistics(ev.Statistics, split)

	fmt.Fprintf(tw, "Statistic means (across %d datasets)\n\n", len(ev.Datasets))

	header := []string{"Estimator"}
	for _, sr := range stats {
		header = append(header, sr.Display)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separator(len(header)), "\t"))

	for j, estimator := range ev.Estimators {
		row := []string{estimator}
		for _, sr := range stats {
			row = append(row, fmt.Sprintf("%.4f", meanOf(mat.Col(nil, j, sr.Means))))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func writeRanksTable(tw *tabwriter.Writer, ev *Evaluation, split string) {
	stats := splitStatistics(ev.Statistics, split)

	fmt.Fprintf(tw, "Mean ranks (1 is best)\n\n")

	header := []string{"Estimator"}
	for _, sr := range stats {
		header = append(header, sr.Display)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separator(len(header)), "\t"))

	for j, estimator := range ev.Estimators {
		row := []string{estimator}
		for _, sr := range stats {
			row = append(row, fmt.Sprintf("%.4f", meanOf(mat.Col(nil, j, sr.Ranks))))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintln(tw)
}

func splitStatistics(stats []StatisticResult, split string) []StatisticResult {
	var out []StatisticResult
	for _, sr := range stats {
		if sr.Split == split {
			out = append(out, sr)
		}
	}
	return out
}

// splitOrder keeps the first-seen order so sections come out in the
// same order the statistics were materialized.
func splitOrder(stats []StatisticResult) []string {
	var order []string
	seen := make(map[string]bool)
	for _, sr := range stats {
		if !seen[sr.Split] {
			seen[sr.Split] = true
			order = append(order, sr.Split)
		}
	}
	return order
}

func separator(n int) []string {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	return sep
}
