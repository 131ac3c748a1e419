package decoder

// ObtainNBList runs best-first search with recombination over src and
// returns up to k complete hypotheses in descending score order (spec.md
// §4.1 "Search algorithm", "Output surface"). Grounded on the original's
// obtain_nblist/best_first_search and on pkg/qgram/wand.go's
// bounded-iteration pivot loop.
func (d *Decoder) ObtainNBList(src []string, k int) []*Hypothesis {
	queue := newHypQueue()
	table := newRecombTable()

	root := Root()
	queue.push(root)
	table.insert(d.stateKey(root), root.score)

	var nbest []*Hypothesis
	for len(nbest) < k {
		hyp, ok := d.bestFirstSearch(src, queue, table)
		if !ok {
			break
		}
		nbest = append(nbest, hyp)
	}
	return nbest
}

// bestFirstSearch pops and expands hypotheses until either a complete
// hypothesis is found (returned), the queue empties, or MaxIters pops
// have occurred (spec.md §4.1 step 2). Each call resumes the same queue
// and table, so successive calls from ObtainNBList search for the
// *next*-best hypothesis without re-exploring discarded states.
func (d *Decoder) bestFirstSearch(src []string, queue *hypQueue, table *recombTable) (*Hypothesis, bool) {
	niter := 0
	for {
		if queue.empty() {
			return nil, false
		}
		if niter >= d.maxIters {
			d.sink.Warnf("maximum number of iterations (%d) exceeded", d.maxIters)
			return nil, false
		}
		niter++

		hyp := queue.pop()
		key := d.stateKey(hyp)
		if table.isSuperseded(key, hyp.score) {
			// Lazy recombination: a better hypothesis already reached
			// this state (spec.md §4.1 step 2a).
			continue
		}

		if hyp.Complete(len(src)) {
			return hyp, true
		}

		for _, child := range d.expand(src, hyp) {
			childKey := d.stateKey(child)
			queue.push(child)
			table.insert(childKey, child.score)
		}
	}
}

// ObtainDetokSent reconstructs the detokenized output for hyp: source
// tokens within each phrase span are concatenated without a separator,
// and phrases are joined with a single space (spec.md §4.1 "Output
// surface" (b)).
func ObtainDetokSent(src []string, hyp *Hypothesis) string {
	if len(src) == 0 {
		return ""
	}
	coverage := hyp.Coverage()
	if len(coverage) == 0 {
		return ""
	}

	var out []byte
	leftmost := 0
	for i, end := range coverage {
		if i > 0 {
			out = append(out, ' ')
		}
		for j := leftmost; j <= end; j++ {
			out = append(out, src[j]...)
		}
		leftmost = end + 1
	}
	return string(out)
}
