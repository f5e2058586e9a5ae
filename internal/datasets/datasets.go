// Package datasets loads time-series problems from .ts files and
// derives deterministic train/test resamples from them.
package datasets

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Dataset is one split of a univariate time-series problem: the series
// and, when the file declares them, the class or target labels as raw
// strings.
type Dataset struct {
	Name   string
	Series [][]float64
	Labels []string
}

// ClassEncoding maps the sorted unique labels of a dataset to integer
// classes, smallest label first.
type ClassEncoding struct {
	Classes []string
	index   map[string]int
}

// NewClassEncoding derives the encoding from the labels present,
// sorted lexicographically.
func NewClassEncoding(labels []string) *ClassEncoding {
	seen := make(map[string]struct{})
	for _, label := range labels {
		seen[label] = struct{}{}
	}
	classes := make([]string, 0, len(seen))
	for label := range seen {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	index := make(map[string]int, len(classes))
	for i, label := range classes {
		index[label] = i
	}
	return &ClassEncoding{Classes: classes, index: index}
}

// Encode maps labels to their class integers. Labels outside the
// encoding are an error; a split must not introduce unseen classes.
func (e *ClassEncoding) Encode(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, label := range labels {
		c, ok := e.index[label]
		if !ok {
			return nil, fmt.Errorf("label %q not present in the training split", label)
		}
		out[i] = c
	}
	return out, nil
}

// NumericTargets parses the labels as float targets, for regression
// and forecasting problems.
func (d *Dataset) NumericTargets() ([]float64, error) {
	out := make([]float64, len(d.Labels))
	for i, label := range d.Labels {
		v, err := strconv.ParseFloat(strings.TrimSpace(label), 64)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: target %q is not numeric", d.Name, label)
		}
		out[i] = v
	}
	return out, nil
}

// ProblemPaths returns the conventional locations of a problem's train
// and test files: <dir>/<name>/<name>_TRAIN.ts and _TEST.ts.
func ProblemPaths(dir, name string) (string, string) {
	return filepath.Join(dir, name, name+"_TRAIN.ts"),
		filepath.Join(dir, name, name+"_TEST.ts")
}

// LoadProblem loads both splits of a problem from the conventional
// layout.
func LoadProblem(dir, name string) (*Dataset, *Dataset, error) {
	trainPath, testPath := ProblemPaths(dir, name)
	train, err := LoadTS(trainPath)
	if err != nil {
		return nil, nil, err
	}
	test, err := LoadTS(testPath)
	if err != nil {
		return nil, nil, err
	}
	return train, test, nil
}

// LoadTS reads a univariate .ts file: @-directive header lines followed
// by @data and one `v1,v2,...[:label]` line per series. Missing values
// written as ? become NaN. Multivariate files (more than one
// colon-separated dimension) are rejected.
func LoadTS(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	d := &Dataset{}
	hasLabels := false
	inData := false

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !inData {
			lower := strings.ToLower(line)
			switch {
			case strings.HasPrefix(lower, "@problemname"):
				d.Name = strings.TrimSpace(line[len("@problemname"):])
			case strings.HasPrefix(lower, "@classlabel"), strings.HasPrefix(lower, "@targetlabel"):
				fields := strings.Fields(line)
				hasLabels = len(fields) > 1 && strings.EqualFold(fields[1], "true")
			case lower == "@data":
				inData = true
			}
			continue
		}

		series, label, err := parseSeriesLine(line, hasLabels)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		d.Series = append(d.Series, series)
		if hasLabels {
			d.Labels = append(d.Labels, label)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if !inData {
		return nil, fmt.Errorf("dataset %s has no @data section", path)
	}
	if len(d.Series) == 0 {
		return nil, fmt.Errorf("dataset %s has no series", path)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), ".ts")
	}
	return d, nil
}

func parseSeriesLine(line string, hasLabel bool) ([]float64, string, error) {
	parts := strings.Split(line, ":")

	label := ""
	if hasLabel {
		if len(parts) < 2 {
			return nil, "", fmt.Errorf("series line has no label")
		}
		label = strings.TrimSpace(parts[len(parts)-1])
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 1 {
		return nil, "", fmt.Errorf("multivariate series are not supported")
	}

	fields := strings.Split(parts[0], ",")
	series := make([]float64, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		if field == "?" {
			series[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, "", fmt.Errorf("value %q is not numeric", field)
		}
		series[i] = v
	}
	return series, label, nil
}
