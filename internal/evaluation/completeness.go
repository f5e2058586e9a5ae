package evaluation

import "sort"

const (
	splitTrain = "train"
	splitTest  = "test"
)

// universe fixes the row/column ordering of every output table: sorted
// estimator names, dataset names and resample ids, plus which splits
// the indexed results cover.
type universe struct {
	estimators []string
	datasets   []string
	resamples  []int
	hasTrain   bool
	hasTest    bool

	estIndex map[string]int
	dsIndex  map[string]int
	resIndex map[int]int
}

// splits returns the splits present, train first.
func (u *universe) splits() []string {
	var s []string
	if u.hasTrain {
		s = append(s, splitTrain)
	}
	if u.hasTest {
		s = append(s, splitTest)
	}
	return s
}

func (u *universe) narrowDatasets(keep []bool) {
	var kept []string
	for n, dataset := range u.datasets {
		if keep[n] {
			kept = append(kept, dataset)
		}
	}
	u.datasets = kept
	u.dsIndex = positionsOf(kept)
}

// presence holds one boolean (estimators × datasets × resamples) matrix
// per split present. Derived once from the index, never mutated after.
type presence struct {
	train [][][]bool
	test  [][][]bool
}

func (p *presence) forSplit(split string) [][][]bool {
	if split == splitTrain {
		return p.train
	}
	return p.test
}

// checkCompleteness derives the sorted universe and the per-split
// presence matrices. Malformed splits and records without a resample
// id fail here, before any matrix is built, with every offender named.
func checkCompleteness(idx *resultsIndex) (*universe, *presence, error) {
	estimators := make(map[string]struct{})
	datasets := make(map[string]struct{})
	resamples := make(map[int]struct{})
	u := &universe{}

	var malformed []SplitEntry
	for estimator, datasetMap := range idx.records {
		estimators[estimator] = struct{}{}
		for dataset, splitMap := range datasetMap {
			datasets[dataset] = struct{}{}
			for split, resampleMap := range splitMap {
				switch split {
				case splitTrain:
					u.hasTrain = true
				case splitTest:
					u.hasTest = true
				default:
					ids := make([]int, 0, len(resampleMap))
					for id := range resampleMap {
						ids = append(ids, id)
					}
					sort.Ints(ids)
					malformed = append(malformed, SplitEntry{
						Estimator: estimator,
						Dataset:   dataset,
						Split:     split,
						Resamples: ids,
					})
				}
				for id := range resampleMap {
					resamples[id] = struct{}{}
				}
			}
		}
	}

	if len(malformed) > 0 {
		sort.Slice(malformed, func(a, b int) bool {
			if malformed[a].Estimator != malformed[b].Estimator {
				return malformed[a].Estimator < malformed[b].Estimator
			}
			if malformed[a].Dataset != malformed[b].Dataset {
				return malformed[a].Dataset < malformed[b].Dataset
			}
			return malformed[a].Split < malformed[b].Split
		})
		return nil, nil, &MalformedSplitError{Entries: malformed}
	}

	if len(idx.noResample) > 0 {
		return nil, nil, &MissingResampleIDError{Entries: sortResampleEntries(idx.noResample)}
	}

	u.estimators = sortedStrings(estimators)
	u.datasets = sortedStrings(datasets)
	u.resamples = sortedInts(resamples)
	u.estIndex = positionsOf(u.estimators)
	u.dsIndex = positionsOf(u.datasets)
	u.resIndex = resamplePositions(u.resamples)

	p := &presence{}
	if u.hasTrain {
		p.train = allocPresence(len(u.estimators), len(u.datasets), len(u.resamples))
	}
	if u.hasTest {
		p.test = allocPresence(len(u.estimators), len(u.datasets), len(u.resamples))
	}

	// One pass over the index, positions resolved through the sorted
	// universe lookups.
	for estimator, datasetMap := range idx.records {
		i := u.estIndex[estimator]
		for dataset, splitMap := range datasetMap {
			n := u.dsIndex[dataset]
			for split, resampleMap := range splitMap {
				m := p.forSplit(split)
				for id := range resampleMap {
					m[i][n][u.resIndex[id]] = true
				}
			}
		}
	}

	return u, p, nil
}

func allocPresence(nEstimators, nDatasets, nResamples int) [][][]bool {
	m := make([][][]bool, nEstimators)
	for i := range m {
		m[i] = make([][]bool, nDatasets)
		for n := range m[i] {
			m[i][n] = make([]bool, nResamples)
		}
	}
	return m
}

func sortResampleEntries(entries []ResampleEntry) []ResampleEntry {
	sorted := make([]ResampleEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].Estimator != sorted[b].Estimator {
			return sorted[a].Estimator < sorted[b].Estimator
		}
		if sorted[a].Dataset != sorted[b].Dataset {
			return sorted[a].Dataset < sorted[b].Dataset
		}
		return sorted[a].Split < sorted[b].Split
	})

	deduped := sorted[:0]
	for i, e := range sorted {
		if i == 0 || e != sorted[i-1] {
			deduped = append(deduped, e)
		}
	}
	return deduped
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

func positionsOf(names []string) map[string]int {
	pos := make(map[string]int, len(names))
	for i, name := range names {
		pos[name] = i
	}
	return pos
}

func resamplePositions(ids []int) map[int]int {
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	return pos
}
