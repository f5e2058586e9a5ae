package results

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/avukotic/tsbench/internal/timeunit"
)

// Result files are line-oriented:
//
//	line 1: <dataset>,<estimator>,<SPLIT>,<resample>,<TIME UNIT>[,<comment>]
//	line 2: estimator parameter info
//	line 3: header statistics (kind-specific, primary metric first)
//	line 4+: per-instance rows
//
// Label rows carry "<true>,<predicted>" plus, for classifiers and
// clusterers, an empty spacer cell and the probability vector.

// WriteFile writes the classifier result in the standard format,
// creating parent directories as needed.
func (r *ClassifierResult) WriteFile(path string) error {
	if err := r.ComputeStatistics(); err != nil {
		return err
	}

	third := fmt.Sprintf("%s,%s,%s,%d",
		formatFloat(r.Accuracy), formatFloat(r.FitTime), formatFloat(r.PredictTime), r.NClasses)

	rows := make([]string, len(r.TrueLabels))
	for i := range r.TrueLabels {
		row := fmt.Sprintf("%d,%d", r.TrueLabels[i], r.Predictions[i])
		if i < len(r.Probabilities) && len(r.Probabilities[i]) > 0 {
			row += ",," + joinFloats(r.Probabilities[i])
		}
		rows[i] = row
	}

	return writeResultFile(path, &r.Meta, third, rows)
}

func (r *RegressorResult) WriteFile(path string) error {
	if err := r.ComputeStatistics(); err != nil {
		return err
	}

	third := fmt.Sprintf("%s,%s,%s",
		formatFloat(r.MSE), formatFloat(r.FitTime), formatFloat(r.PredictTime))

	rows := make([]string, len(r.TrueValues))
	for i := range r.TrueValues {
		rows[i] = formatFloat(r.TrueValues[i]) + "," + formatFloat(r.Predictions[i])
	}

	return writeResultFile(path, &r.Meta, third, rows)
}

func (r *ClustererResult) WriteFile(path string) error {
	if err := r.ComputeStatistics(); err != nil {
		return err
	}

	third := fmt.Sprintf("%s,%s,%s,%d",
		formatFloat(r.ClusteringAccuracy), formatFloat(r.FitTime), formatFloat(r.PredictTime), r.NClusters)

	rows := make([]string, len(r.TrueLabels))
	for i := range r.TrueLabels {
		row := fmt.Sprintf("%d,%d", r.TrueLabels[i], r.ClusterLabels[i])
		if i < len(r.Probabilities) && len(r.Probabilities[i]) > 0 {
			row += ",," + joinFloats(r.Probabilities[i])
		}
		rows[i] = row
	}

	return writeResultFile(path, &r.Meta, third, rows)
}

func (r *ForecasterResult) WriteFile(path string) error {
	if err := r.ComputeStatistics(); err != nil {
		return err
	}

	third := fmt.Sprintf("%s,%s,%s",
		formatFloat(r.MAPE), formatFloat(r.FitTime), formatFloat(r.PredictTime))

	rows := make([]string, len(r.TrueValues))
	for i := range r.TrueValues {
		rows[i] = formatFloat(r.TrueValues[i]) + "," + formatFloat(r.Predictions[i])
	}

	return writeResultFile(path, &r.Meta, third, rows)
}

// LoadClassifierResult reads a classifier result file. The accuracy on
// the header line is authoritative; remaining statistics are computed
// lazily from the prediction rows.
func LoadClassifierResult(path string) (*ClassifierResult, error) {
	meta, third, rows, err := readResultFile(path)
	if err != nil {
		return nil, err
	}

	r := &ClassifierResult{
		Meta:             meta,
		Accuracy:         math.NaN(),
		BalancedAccuracy: math.NaN(),
		NegLogLikelihood: math.NaN(),
	}
	if len(third) > 0 {
		r.Accuracy = parseFloatOrNaN(third[0])
	}
	if len(third) > 1 {
		r.FitTime = parseFloatOrNaN(third[1])
	}
	if len(third) > 2 {
		r.PredictTime = parseFloatOrNaN(third[2])
	}
	if len(third) > 3 {
		r.NClasses, _ = strconv.Atoi(third[3])
	}

	for n, fields := range rows {
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: prediction row %d has %d fields", path, n+1, len(fields))
		}
		yt, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s: prediction row %d: %w", path, n+1, err)
		}
		yp, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s: prediction row %d: %w", path, n+1, err)
		}
		r.TrueLabels = append(r.TrueLabels, yt)
		r.Predictions = append(r.Predictions, yp)
		if len(fields) > 3 {
			probs, err := parseFloats(fields[3:])
			if err != nil {
				return nil, fmt.Errorf("%s: prediction row %d: %w", path, n+1, err)
			}
			r.Probabilities = append(r.Probabilities, probs)
		}
	}

	if r.NClasses == 0 {
		r.NClasses = countClasses(r.TrueLabels, r.Probabilities)
	}
	return r, nil
}

func LoadRegressorResult(path string) (*RegressorResult, error) {
	meta, third, rows, err := readResultFile(path)
	if err != nil {
		return nil, err
	}

	r := &RegressorResult{
		Meta: meta,
		MSE:  math.NaN(),
		RMSE: math.NaN(),
		MAE:  math.NaN(),
	}
	if len(third) > 0 {
		r.MSE = parseFloatOrNaN(third[0])
	}
	if len(third) > 1 {
		r.FitTime = parseFloatOrNaN(third[1])
	}
	if len(third) > 2 {
		r.PredictTime = parseFloatOrNaN(third[2])
	}

	r.TrueValues, r.Predictions, err = parseValueRows(path, rows)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func LoadClustererResult(path string) (*ClustererResult, error) {
	meta, third, rows, err := readResultFile(path)
	if err != nil {
		return nil, err
	}

	r := &ClustererResult{
		Meta:               meta,
		ClusteringAccuracy: math.NaN(),
	}
	if len(third) > 0 {
		r.ClusteringAccuracy = parseFloatOrNaN(third[0])
	}
	if len(third) > 1 {
		r.FitTime = parseFloatOrNaN(third[1])
	}
	if len(third) > 2 {
		r.PredictTime = parseFloatOrNaN(third[2])
	}
	if len(third) > 3 {
		r.NClusters, _ = strconv.Atoi(third[3])
	}

	for n, fields := range rows {
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s: cluster row %d has %d fields", path, n+1, len(fields))
		}
		yt, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s: cluster row %d: %w", path, n+1, err)
		}
		c, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s: cluster row %d: %w", path, n+1, err)
		}
		r.TrueLabels = append(r.TrueLabels, yt)
		r.ClusterLabels = append(r.ClusterLabels, c)
		if len(fields) > 3 {
			probs, err := parseFloats(fields[3:])
			if err != nil {
				return nil, fmt.Errorf("%s: cluster row %d: %w", path, n+1, err)
			}
			r.Probabilities = append(r.Probabilities, probs)
		}
	}
	return r, nil
}

func LoadForecasterResult(path string) (*ForecasterResult, error) {
	meta, third, rows, err := readResultFile(path)
	if err != nil {
		return nil, err
	}

	r := &ForecasterResult{
		Meta: meta,
		MAPE: math.NaN(),
	}
	if len(third) > 0 {
		r.MAPE = parseFloatOrNaN(third[0])
	}
	if len(third) > 1 {
		r.FitTime = parseFloatOrNaN(third[1])
	}
	if len(third) > 2 {
		r.PredictTime = parseFloatOrNaN(third[2])
	}

	r.TrueValues, r.Predictions, err = parseValueRows(path, rows)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func writeResultFile(path string, meta *Meta, thirdLine string, rows []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results directory: %w", err)
	}

	params := meta.Params
	if params == "" {
		params = DefaultParameterInfo
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s,%s,%s,%d,%s", meta.Dataset, meta.Estimator,
		strings.ToUpper(meta.Split), meta.Resample, meta.Unit.Label())
	if meta.Comment != "" {
		b.WriteString("," + meta.Comment)
	}
	b.WriteString("\n")
	b.WriteString(params + "\n")
	b.WriteString(thirdLine + "\n")
	for _, row := range rows {
		b.WriteString(row + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write result file: %w", err)
	}
	return nil
}

func readResultFile(path string) (Meta, []string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return Meta{}, nil, nil, fmt.Errorf("open result file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Meta{}, nil, nil, fmt.Errorf("read result file %s: %w", path, err)
	}
	if len(lines) < 3 {
		return Meta{}, nil, nil, fmt.Errorf("result file %s has %d lines, want at least 3", path, len(lines))
	}

	head := strings.SplitN(lines[0], ",", 6)
	if len(head) < 5 {
		return Meta{}, nil, nil, fmt.Errorf("result file %s: malformed first line %q", path, lines[0])
	}

	meta := Meta{
		Dataset:   head[0],
		Estimator: head[1],
		Split:     head[2],
		Params:    lines[1],
	}
	if id, err := strconv.Atoi(strings.TrimSpace(head[3])); err == nil {
		meta.Resample = id
		meta.HasResample = true
	}
	unit, err := timeunit.Parse(head[4])
	if err != nil {
		return Meta{}, nil, nil, fmt.Errorf("result file %s: %w", path, err)
	}
	meta.Unit = unit
	if len(head) > 5 {
		meta.Comment = head[5]
	}

	third := strings.Split(lines[2], ",")

	rows := make([][]string, 0, len(lines)-3)
	for _, line := range lines[3:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	return meta, third, rows, nil
}

func parseValueRows(path string, rows [][]string) ([]float64, []float64, error) {
	yTrue := make([]float64, 0, len(rows))
	yPred := make([]float64, 0, len(rows))
	for n, fields := range rows {
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("%s: value row %d has %d fields", path, n+1, len(fields))
		}
		yt, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: value row %d: %w", path, n+1, err)
		}
		yp, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: value row %d: %w", path, n+1, err)
		}
		yTrue = append(yTrue, yt)
		yPred = append(yPred, yp)
	}
	return yTrue, yPred, nil
}

func parseFloats(fields []string) ([]float64, error) {
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseFloatOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func joinFloats(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ",")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
