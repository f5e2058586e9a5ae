package evaluation

import "strings"

// resultsIndex groups a flat list of records into estimator → dataset →
// split → resample lookups. Splits are lower-cased on the way in;
// malformed split labels are kept so the completeness check can name
// them in its error. Records without a resample id cannot be keyed and
// are tracked separately for the same reason.
type resultsIndex struct {
	records    map[string]map[string]map[string]map[int]Result
	noResample []ResampleEntry
}

func buildIndex(records []Result) *resultsIndex {
	idx := &resultsIndex{
		records: make(map[string]map[string]map[string]map[int]Result),
	}

	for _, r := range records {
		estimator := r.EstimatorName()
		dataset := r.DatasetName()
		split := strings.ToLower(r.SplitLabel())

		resample, ok := r.ResampleID()
		if !ok {
			idx.noResample = append(idx.noResample, ResampleEntry{
				Estimator: estimator,
				Dataset:   dataset,
				Split:     split,
			})
			continue
		}

		datasets, ok := idx.records[estimator]
		if !ok {
			datasets = make(map[string]map[string]map[int]Result)
			idx.records[estimator] = datasets
		}
		splits, ok := datasets[dataset]
		if !ok {
			splits = make(map[string]map[int]Result)
			datasets[dataset] = splits
		}
		resamples, ok := splits[split]
		if !ok {
			resamples = make(map[int]Result)
			splits[split] = resamples
		}
		resamples[resample] = r
	}

	return idx
}

func (idx *resultsIndex) lookup(estimator, dataset, split string, resample int) (Result, bool) {
	r, ok := idx.records[estimator][dataset][split][resample]
	return r, ok
}
