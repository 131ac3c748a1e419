// Package decoder implements the best-first, state-recombined monotone
// phrase decoder of spec.md §4.1/§4.4: given a source token sequence and
// a requested N-best size, it produces up to K complete hypotheses ranked
// by descending score.
//
// Grounded on the original Decoder/Hypothesis/PriorityQueue/StateInfoDict
// classes in thot_utils/libs/thot_preproc.py, and on the teacher's
// best-first iterator-merge style in pkg/qgram/wand.go and its
// container/heap priority search in pkg/reality/pcst/pcst.go.
package decoder

import "github.com/bits-and-blooms/bitset"

// MaxPhraseLen is the design constant of spec.md §4.1: no expansion ever
// consumes more than this many source tokens, and no reordering is ever
// considered.
const MaxPhraseLen = 7

// MaxIters bounds the number of pops performed by one best-first search
// (spec.md §4.1 step 2, §6).
const MaxIters = 100000

// Coverage is the ordered, strictly increasing sequence of source
// positions consumed by a hypothesis so far (spec.md §3). An empty
// Coverage means nothing has been covered yet.
type Coverage []int

// Last returns the last covered position, or -1 if coverage is empty —
// the `tm_state` of spec.md §4.2.
func (c Coverage) Last() int {
	if len(c) == 0 {
		return -1
	}
	return c[len(c)-1]
}

// Complete reports whether c covers every position of a source of length
// n (spec.md §3: "complete iff c_{k-1} = N-1").
func (c Coverage) Complete(n int) bool {
	return c.Last() == n-1
}

// Extend returns a new Coverage with pos appended, without mutating c
// (hypotheses are immutable once created, spec.md §3).
func (c Coverage) Extend(pos int) Coverage {
	next := make(Coverage, len(c)+1)
	copy(next, c)
	next[len(c)] = pos
	return next
}

// maxLMStateLen is the capacity of a StateKey's LM component. The number
// of entries actually held is the length of the history the Decoder
// passes in, N_MAX-1 (spec.md §4.3: "the last N_MAX-1 target tokens").
const maxLMStateLen = 15

// lmState is a small, fixed-capacity value type holding the last few
// target tokens of a hypothesis, left-padded with BOS. Spec.md §9 calls
// for modeling this as "a small value type, not a string, to avoid
// repeated parsing on every insert" — an array-backed value type is
// comparable (usable as a map key) without per-insert string splitting.
type lmState struct {
	n      int // number of meaningful entries, 0..maxLMStateLen
	tokens [maxLMStateLen]string
}

func newLMState(tokens []string) lmState {
	var s lmState
	s.n = len(tokens)
	if s.n > maxLMStateLen {
		// Reached only when NMax-1 exceeds maxLMStateLen; the state then
		// keeps only the last maxLMStateLen tokens.
		s.n = maxLMStateLen
		tokens = tokens[len(tokens)-maxLMStateLen:]
	}
	copy(s.tokens[:], tokens)
	return s
}

func (s lmState) slice() []string {
	return s.tokens[:s.n]
}

// StateKey identifies the behavioral equivalence class of a hypothesis
// for recombination (spec.md §3). Two hypotheses sharing a StateKey are
// indistinguishable to every future expansion.
type StateKey struct {
	tmState int
	lmState lmState
}

// Hypothesis is an immutable partial (or complete) translation, created
// either as the empty seed hypothesis or by expanding a parent (spec.md
// §3). Hypotheses keep a back-reference to their parent rather than
// copying the words array on every expansion (spec.md §9); the coverage
// sequence is copied on each expansion (Coverage.Extend).
type Hypothesis struct {
	parent   *Hypothesis
	coverage Coverage
	// phraseWords is the slice of target words contributed by this
	// expansion alone (nil for the seed hypothesis).
	phraseWords []string
	score       float64

	// insertionOrder breaks score ties deterministically (spec.md §4.1
	// "Ordering and tie-breaks": a stable insertion-order tiebreak
	// suffices). Assigned by the Decoder at creation time.
	insertionOrder int
}

// Root returns the empty seed hypothesis: empty coverage, empty words,
// score 0 (spec.md §3).
func Root() *Hypothesis {
	return &Hypothesis{}
}

// Coverage returns the hypothesis's coverage sequence.
func (h *Hypothesis) Coverage() Coverage {
	return h.coverage
}

// Score returns the hypothesis's cumulative log-score.
func (h *Hypothesis) Score() float64 {
	return h.score
}

// Words reconstructs the full target token sequence produced so far by
// walking the parent chain. This is O(depth) rather than O(1); the
// decoder calls it for every state key and every expansion, and in
// exchange no hypothesis stores a copy of its ancestors' words (spec.md §9).
func (h *Hypothesis) Words() []string {
	var depths [][]string
	for cur := h; cur != nil; cur = cur.parent {
		if len(cur.phraseWords) > 0 {
			depths = append(depths, cur.phraseWords)
		}
	}
	total := 0
	for _, d := range depths {
		total += len(d)
	}
	out := make([]string, 0, total)
	for i := len(depths) - 1; i >= 0; i-- {
		out = append(out, depths[i]...)
	}
	return out
}

// Complete reports whether the hypothesis covers the whole source of
// length n.
func (h *Hypothesis) Complete(n int) bool {
	return h.coverage.Complete(n)
}

// CoverageBits renders the hypothesis's coverage as a bitset.BitSet of
// length n, with one bit set per entry of coverage, i.e. per phrase end
// position. Positions inside a multi-token phrase other than its last
// are not set. This is the same role resorank.TokenMetadata.SegmentMask
// plays as a compact coverage bitmap, generalized to arbitrary source
// length.
func (h *Hypothesis) CoverageBits(n int) *bitset.BitSet {
	bs := bitset.New(uint(n))
	for _, pos := range h.coverage {
		bs.Set(uint(pos))
	}
	return bs
}

// PhraseBoundaries returns, for each phrase in expansion order, the
// (srcLeft, srcRight) 0-based inclusive source span and the 0-based
// exclusive target cut — the data AlignmentInfo is built from (spec.md
// §3 AlignmentInfo, §4.5).
func (h *Hypothesis) PhraseBoundaries() []PhraseBoundary {
	var phrases []*Hypothesis
	for cur := h; cur != nil && cur.parent != nil; cur = cur.parent {
		phrases = append(phrases, cur)
	}
	// phrases is in reverse (most recent first); walk it backwards.
	bounds := make([]PhraseBoundary, len(phrases))
	trgCut := 0
	for i := len(phrases) - 1; i >= 0; i-- {
		p := phrases[i]
		srcRight := p.coverage.Last()
		srcLeft := srcRight - phraseSourceSpan(p) + 1
		trgCut += len(p.phraseWords)
		bounds[len(phrases)-1-i] = PhraseBoundary{
			SrcLeft:  srcLeft,
			SrcRight: srcRight,
			TrgCut:   trgCut,
		}
	}
	return bounds
}

func phraseSourceSpan(h *Hypothesis) int {
	parentLast := -1
	if h.parent != nil {
		parentLast = h.parent.coverage.Last()
	}
	return h.coverage.Last() - parentLast
}

// PhraseBoundary is one entry of AlignmentInfo (spec.md §3): the 0-based
// inclusive source span and 0-based exclusive target cut of one output
// phrase.
type PhraseBoundary struct {
	SrcLeft  int
	SrcRight int
	TrgCut   int
}

// AlignmentInfo is the decoder output consumed by decategorization
// (spec.md §3). SrcSegms and TrgCuts are parallel, one entry per output
// phrase, in left-to-right order.
type AlignmentInfo struct {
	SrcSegms []SrcSegment
	TrgCuts  []int
}

// SrcSegment is a 0-based inclusive source span.
type SrcSegment struct {
	Left, Right int
}

// ExtractAlignment converts a hypothesis's phrase boundaries into
// AlignmentInfo, the structured equivalent of the original's
// extract_alig_info (which re-parsed a formatted hypothesis dump; here
// the phrase boundaries are already tracked on the Hypothesis, so no
// parsing is needed).
func ExtractAlignment(h *Hypothesis) AlignmentInfo {
	bounds := h.PhraseBoundaries()
	info := AlignmentInfo{
		SrcSegms: make([]SrcSegment, len(bounds)),
		TrgCuts:  make([]int, len(bounds)),
	}
	for i, b := range bounds {
		info.SrcSegms[i] = SrcSegment{Left: b.SrcLeft, Right: b.SrcRight}
		info.TrgCuts[i] = b.TrgCut
	}
	return info
}
