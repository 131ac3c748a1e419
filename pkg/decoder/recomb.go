package decoder

// recombTable records, per StateKey, the best score seen for any
// hypothesis reaching that state (spec.md §4.4 RecombinationTable).
// Monotonic per key: the recorded score never decreases. Grounded on the
// original's StateInfoDict and on internal/store/memstore.go's
// map-backed store pattern (no locking needed here: one recombTable is
// scoped to a single-threaded search, per spec.md §5).
type recombTable struct {
	best map[StateKey]float64
}

func newRecombTable() *recombTable {
	return &recombTable{best: make(map[StateKey]float64)}
}

// insert keeps max(existing, score) for key (spec.md §4.4).
func (t *recombTable) insert(key StateKey, score float64) {
	if existing, ok := t.best[key]; !ok || score > existing {
		t.best[key] = score
	}
}

// isSuperseded reports whether a strictly greater score than score has
// been recorded for key (spec.md §4.4 "is_superseded").
func (t *recombTable) isSuperseded(key StateKey, score float64) bool {
	existing, ok := t.best[key]
	return ok && existing > score
}
