package evaluation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// writeSummary writes the top-level summary table: one block of three
// rows per (split, statistic) pair, holding the estimator names, the
// per-estimator means across datasets and the per-estimator mean
// ranks. Row labels are prefixed by the split so labels cannot collide
// across splits. Blocks are separated by a blank line.
func writeSummary(stats []StatisticResult, estimators []string, dir, evalName string) error {
	var b strings.Builder
	for _, sr := range stats {
		label := sr.Split + sr.Display
		fmt.Fprintf(&b, "%s,%s\n", label, strings.Join(estimators, ","))
		fmt.Fprintf(&b, "%sMean,%s\n", label, strings.Join(columnMeans(sr.Means), ","))
		fmt.Fprintf(&b, "%sAvgRank,%s\n\n", label, strings.Join(columnMeans(sr.Ranks), ","))
	}

	path := filepath.Join(dir, evalName+"_summary.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func columnMeans(m *mat.Dense) []string {
	_, cols := m.Dims()
	out := make([]string, cols)
	for j := 0; j < cols; j++ {
		out[j] = formatFloat(meanOf(mat.Col(nil, j, m)))
	}
	return out
}
