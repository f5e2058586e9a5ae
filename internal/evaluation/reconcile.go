package evaluation

import (
	"fmt"
	"log/slog"
	"strings"
)

// missingResults lists every (estimator, dataset, resample) cell that a
// present split says should exist but does not, train block first.
func missingResults(u *universe, p *presence) []MissingResult {
	var missing []MissingResult
	for _, split := range u.splits() {
		m := p.forSplit(split)
		for i, estimator := range u.estimators {
			for n, dataset := range u.datasets {
				for j, resample := range u.resamples {
					if !m[i][n][j] {
						missing = append(missing, MissingResult{
							Estimator: estimator,
							Dataset:   dataset,
							Split:     split,
							Resample:  resample,
						})
					}
				}
			}
		}
	}
	return missing
}

// reconcile applies the missing-results policy. Strict mode fails with
// the full missing list. Lenient mode narrows the universe to the
// datasets with complete presence across every estimator, resample and
// requested split; estimators and resamples are never dropped. The
// presence matrices and index are left untouched.
func reconcile(u *universe, p *presence, errorOnMissing bool) error {
	missing := missingResults(u, p)
	if len(missing) == 0 {
		return nil
	}

	if errorOnMissing {
		return &IncompleteResultsError{Missing: missing}
	}

	keep := make([]bool, len(u.datasets))
	for n := range u.datasets {
		keep[n] = true
		for _, split := range u.splits() {
			m := p.forSplit(split)
			for i := range u.estimators {
				for j := range u.resamples {
					if !m[i][n][j] {
						keep[n] = false
					}
				}
			}
		}
	}

	dropped := make([]string, 0)
	for n, dataset := range u.datasets {
		if !keep[n] {
			dropped = append(dropped, dataset)
		}
	}
	u.narrowDatasets(keep)

	if len(u.datasets) == 0 {
		return fmt.Errorf("no dataset has complete results for every estimator and resample")
	}

	details := make([]string, len(missing))
	for i, m := range missing {
		details[i] = m.String()
	}
	slog.Warn("missing results, continuing evaluation with available datasets",
		"dropped_datasets", dropped,
		"missing", strings.Join(details, " "),
	)
	return nil
}
