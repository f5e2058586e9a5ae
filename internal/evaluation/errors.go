package evaluation

import (
	"fmt"
	"strings"
)

// SplitEntry identifies an index entry whose split label is neither
// "train" nor "test".
type SplitEntry struct {
	Estimator string
	Dataset   string
	Split     string
	Resamples []int
}

// MalformedSplitError reports every record whose split is not "train"
// or "test". Always fatal: such input cannot be aggregated.
type MalformedSplitError struct {
	Entries []SplitEntry
}

func (e *MalformedSplitError) Error() string {
	var b strings.Builder
	b.WriteString("all results must have a split of either \"train\" or \"test\":")
	for _, entry := range e.Entries {
		fmt.Fprintf(&b, "\nestimator %s on %s has split %q (resamples %v)",
			entry.Estimator, entry.Dataset, entry.Split, entry.Resamples)
	}
	return b.String()
}

// ResampleEntry identifies a record that carries no resample id.
type ResampleEntry struct {
	Estimator string
	Dataset   string
	Split     string
}

// MissingResampleIDError reports every record lacking a resample id.
// Always fatal.
type MissingResampleIDError struct {
	Entries []ResampleEntry
}

func (e *MissingResampleIDError) Error() string {
	var b strings.Builder
	b.WriteString("all results must have a resample id:")
	for _, entry := range e.Entries {
		fmt.Fprintf(&b, "\nestimator %s on %s is missing a resample id for %s results",
			entry.Estimator, entry.Dataset, entry.Split)
	}
	return b.String()
}

// MissingResult identifies one (estimator, dataset, split, resample)
// combination with no record.
type MissingResult struct {
	Estimator string
	Dataset   string
	Split     string
	Resample  int
}

func (m MissingResult) String() string {
	return fmt.Sprintf("Estimator %s is missing %s results for %s resample %d.",
		m.Estimator, m.Split, m.Dataset, m.Resample)
}

// IncompleteResultsError is returned in strict mode when any expected
// combination has no record. The message enumerates every missing
// combination so the report is actionable.
type IncompleteResultsError struct {
	Missing []MissingResult
}

func (e *IncompleteResultsError) Error() string {
	var b strings.Builder
	b.WriteString("missing results, exiting evaluation:")
	for _, m := range e.Missing {
		b.WriteString("\n" + m.String())
	}
	return b.String()
}
