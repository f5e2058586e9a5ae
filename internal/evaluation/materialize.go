package evaluation

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/avukotic/tsbench/internal/timeunit"
)

// CriticalDifferencePlotter renders an estimator comparison figure for
// one statistic's dataset-mean matrix. Implementations choose the
// output format written under dir.
type CriticalDifferencePlotter interface {
	PlotCriticalDifference(dir, statistic string, means *mat.Dense, estimators, datasets []string, higherBetter bool) error
}

// materializeStatistic builds the per-resample tables, the dataset-mean
// matrix and the fractional-rank matrix for one statistic on one split,
// writing each as CSV under statDir. Timing statistics are normalized
// to milliseconds before averaging.
func materializeStatistic(
	idx *resultsIndex,
	u *universe,
	s Statistic,
	split string,
	statDir string,
	plotter CriticalDifferencePlotter,
) (*mat.Dense, *mat.Dense, error) {
	allResamplesDir := filepath.Join(statDir, "all_resamples")
	if err := os.MkdirAll(allResamplesDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create statistic directory: %w", err)
	}

	means := mat.NewDense(len(u.datasets), len(u.estimators), nil)

	for i, estimator := range u.estimators {
		estStats := mat.NewDense(len(u.datasets), len(u.resamples), nil)
		for n, dataset := range u.datasets {
			for j, resample := range u.resamples {
				r, ok := idx.lookup(estimator, dataset, split, resample)
				if !ok {
					return nil, nil, fmt.Errorf("no %s result for estimator %s on %s resample %d",
						split, estimator, dataset, resample)
				}
				if err := r.ComputeStatistics(); err != nil {
					return nil, nil, fmt.Errorf("compute statistics for %s on %s: %w", estimator, dataset, err)
				}

				v := s.Value(r)
				if s.Timing {
					var err error
					v, err = timeunit.ToMilliseconds(v, r.TimeUnit())
					if err != nil {
						return nil, nil, fmt.Errorf("normalize %s for %s on %s: %w", s.Key, estimator, dataset, err)
					}
				}
				estStats.Set(n, j, v)
			}
			means.Set(n, i, meanOf(estStats.RawRowView(n)))
		}

		path := filepath.Join(allResamplesDir, fmt.Sprintf("%s_%s.csv", estimator, s.Key))
		if err := writeMatrixCSV(path, resampleLabels(u.resamples), u.datasets, estStats); err != nil {
			return nil, nil, err
		}
	}

	if err := writeMatrixCSV(filepath.Join(statDir, s.Key+"_mean.csv"), u.estimators, u.datasets, means); err != nil {
		return nil, nil, err
	}

	ranks := mat.NewDense(len(u.datasets), len(u.estimators), nil)
	for n := range u.datasets {
		ranks.SetRow(n, FractionalRanks(means.RawRowView(n), s.HigherBetter))
	}
	if err := writeMatrixCSV(filepath.Join(statDir, s.Key+"_ranks.csv"), u.estimators, u.datasets, ranks); err != nil {
		return nil, nil, err
	}

	if plotter != nil {
		if err := plotter.PlotCriticalDifference(statDir, s.Key, means, u.estimators, u.datasets, s.HigherBetter); err != nil {
			slog.Warn("critical difference figure failed", "statistic", s.Key, "split", split, "error", err)
		}
	}

	return means, ranks, nil
}

// writeMatrixCSV writes a matrix with an empty corner cell, column
// labels in the header, and one labelled row per matrix row.
func writeMatrixCSV(path string, columns, rows []string, m *mat.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{""}, columns...)); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	for n, name := range rows {
		record := make([]string, 0, len(columns)+1)
		record = append(record, name)
		for _, v := range m.RawRowView(n) {
			record = append(record, formatFloat(v))
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func resampleLabels(resamples []int) []string {
	labels := make([]string, len(resamples))
	for i, id := range resamples {
		labels[i] = strconv.Itoa(id)
	}
	return labels
}

// meanOf averages with decimal arithmetic so cleanly representable
// inputs keep cleanly representable means. Rows containing NaN or
// infinities fall back to float math and propagate as-is.
func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := decimal.Zero
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return stat.Mean(values, nil)
		}
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).InexactFloat64()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
