package decoder

import (
	"math"

	"github.com/thot-toolkit/thotgo/pkg/diagnostics"
	"github.com/thot-toolkit/thotgo/pkg/tokens"
)

// TranslationModel is the contract the decoder needs from a translation
// scorer (spec.md §4.2): candidate target phrases for a source span, and
// the TM-smoothed conditional p̃(trg | src). Implemented by
// pkg/tm.Scorer; kept as a local interface so this package never imports
// pkg/tm (the dependency runs the other way: pkg/tm has no reason to
// know about decoder.Hypothesis).
type TranslationModel interface {
	// Targets returns the candidate target phrases for a source span,
	// each already split into target tokens. An empty result is valid
	// (spec.md §7: the decoder itself synthesizes the length-1
	// pass-through option).
	Targets(srcSpan []string) [][]string
	// Prob returns the TM-smoothed p̃(trgPhrase | srcSpan) of spec.md
	// §4.2; always in (0, 1].
	Prob(srcSpan, trgPhrase []string) float64
}

// LanguageModel is the contract the decoder needs from a language
// scorer (spec.md §4.3): the interpolated n-gram probability of one
// token given its history, and the configured n-gram order. Implemented
// by pkg/lm.Scorer.
type LanguageModel interface {
	// NMax is the configured n-gram order (N_MAX of spec.md §4.3).
	NMax() int
	// Prob returns p_int(word | history) (spec.md §4.3); callers are
	// responsible for taking its log.
	Prob(history []string, word string) float64
}

// Weights is the 4-tuple (w_tm, w_pp, w_wp, w_lm) of spec.md §3.
type Weights struct {
	TM, PP, WP, LM float64
}

// UniformWeights is the fallback substituted for a malformed weight
// vector (spec.md §3, §7).
var UniformWeights = Weights{TM: 1, PP: 1, WP: 1, LM: 1}

// ResolveWeights validates a caller-supplied weight slice against the
// spec's arity-4 contract (§3: "if the caller supplies a tuple of any
// other arity, the decoder substitutes (1,1,1,1) and emits a one-line
// diagnostic"). The substitution is deliberately silent-but-logged, not
// rejected: spec.md §9 flags stricter rejection as a future direction,
// not the current contract.
func ResolveWeights(raw []float64, sink diagnostics.Sink) Weights {
	if len(raw) != 4 {
		sink.Warnf("malformed weight vector (want 4 entries, got %d); using uniform weights", len(raw))
		return UniformWeights
	}
	w := Weights{TM: raw[0], PP: raw[1], WP: raw[2], LM: raw[3]}
	sink.Infof("decoder weights: tm=%g pp=%g wp=%g lm=%g", w.TM, w.PP, w.WP, w.LM)
	return w
}

// phrasePenaltyLogProb is log(1/e) = -1, the phrase-penalty feature of
// spec.md §4.1, rewarding fewer phrases.
const phrasePenaltyLogProb = -1.0

// Decoder orchestrates monotone phrase expansion, scoring, recombination
// and N-best extraction over a source token sequence (spec.md §4.1).
// Grounded on the original's Decoder class and on the best-first,
// bounded-iteration loop shape of pkg/qgram/wand.go's
// GeneratePrunedCandidates.
type Decoder struct {
	tm   TranslationModel
	lm   LanguageModel
	w    Weights
	sink diagnostics.Sink

	maxPhraseLen int
	maxIters     int
}

// Option configures a Decoder beyond its required collaborators.
type Option func(*Decoder)

// WithMaxPhraseLen overrides MaxPhraseLen (defaults to the spec constant).
func WithMaxPhraseLen(n int) Option { return func(d *Decoder) { d.maxPhraseLen = n } }

// WithMaxIters overrides MaxIters (defaults to the spec constant).
func WithMaxIters(n int) Option { return func(d *Decoder) { d.maxIters = n } }

// WithSink attaches a diagnostics sink (defaults to diagnostics.DiscardSink).
func WithSink(s diagnostics.Sink) Option { return func(d *Decoder) { d.sink = s } }

// New builds a Decoder over the given model oracles and weight vector.
// Logs the resolved weights on every construction (SPEC_FULL.md §4,
// matching the original's constructor printing its weights whenever a
// valid 4-tuple is supplied, not only on the malformed-arity path).
func New(tm TranslationModel, lm LanguageModel, w Weights, opts ...Option) *Decoder {
	d := &Decoder{
		tm:           tm,
		lm:           lm,
		w:            w,
		sink:         diagnostics.DiscardSink{},
		maxPhraseLen: MaxPhraseLen,
		maxIters:     MaxIters,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.sink.Infof("decoder weights: tm=%g pp=%g wp=%g lm=%g", d.w.TM, d.w.PP, d.w.WP, d.w.LM)
	return d
}

// stateKey computes the StateKey of a hypothesis (spec.md §3): tm_state
// is the last covered source position, lm_state is the last N_MAX-1
// target tokens left-padded with BOS.
func (d *Decoder) stateKey(h *Hypothesis) StateKey {
	words := h.Words()
	n := d.lm.NMax() - 1
	hist := lmHistory(words, n)
	return StateKey{tmState: h.coverage.Last(), lmState: newLMState(hist)}
}

// lmHistory returns the last n words of words, left-padded with BOS so
// the result always has exactly n entries (spec.md §4.3).
func lmHistory(words []string, n int) []string {
	if n <= 0 {
		return nil
	}
	hist := make([]string, n)
	for i := 0; i < n; i++ {
		hist[i] = tokens.BOS
	}
	start := len(words) - n
	if start < 0 {
		start = 0
	}
	tail := words[start:]
	copy(hist[n-len(tail):], tail)
	return hist
}

// safeLog guards against log(0) propagating as -Inf and poisoning score
// comparisons (spec.md §7: LM zero denominators "propagate as log 0").
// A hypothesis that truly hits this path is a dead end either way; a
// large finite penalty keeps it orderable instead of NaN/-Inf-poisoned.
func safeLog(p float64) float64 {
	if p <= 0 {
		return -1e18
	}
	return math.Log(p)
}

// expand produces every legal continuation of hyp by consuming the
// source span [last+1 .. last+ℓ] for ℓ = 1..maxPhraseLen that stays
// within src (spec.md §4.1 "Search space"/"Expansion contract").
func (d *Decoder) expand(src []string, hyp *Hypothesis) []*Hypothesis {
	last := hyp.coverage.Last()
	var out []*Hypothesis

	for length := 1; length <= d.maxPhraseLen; length++ {
		end := last + length
		if end >= len(src) {
			break
		}
		span := src[last+1 : end+1]

		options := d.tm.Targets(span)
		if len(options) == 0 {
			if len(span) == 1 {
				// Single-token fallback: guarantees termination on
				// unseen vocabulary (spec.md §4.1, §7).
				options = [][]string{{span[0]}}
			} else {
				// Multi-token span with no options: skipped entirely
				// (spec.md §7).
				continue
			}
		}

		for _, opt := range options {
			out = append(out, d.scoreExpansion(src, hyp, end, span, opt))
		}
	}
	return out
}

// Trace is the structured per-expansion diagnostic event of
// SPEC_FULL.md §4, carrying the same four weighted feature components
// plus the end-of-sentence bonus the original prints line-by-line under
// its verbose flag.
type Trace struct {
	TM, PP, WP, LM, EndBonus float64
	Score                    float64
}

func (d *Decoder) scoreExpansion(src []string, hyp *Hypothesis, newCov int, span, opt []string) *Hypothesis {
	newHyp := &Hypothesis{
		parent:      hyp,
		coverage:    hyp.coverage.Extend(newCov),
		phraseWords: opt,
	}

	tmLP := safeLog(d.tm.Prob(span, opt))
	ppLP := phrasePenaltyLogProb
	wpLP := float64(len(opt)) * phrasePenaltyLogProb

	words := hyp.Words()
	lmLP := d.lmSequenceLogProb(words, opt)

	endBonus := 0.0
	if newHyp.coverage.Complete(len(src)) {
		fullWords := append(append([]string{}, words...), opt...)
		hist := lmHistory(fullWords, d.lm.NMax()-1)
		endBonus = d.w.LM * safeLog(d.lm.Prob(hist, tokens.EOS))
	}

	weightedTM := d.w.TM * tmLP
	weightedPP := d.w.PP * ppLP
	weightedWP := d.w.WP * wpLP
	weightedLM := d.w.LM * lmLP

	newHyp.score = hyp.score + weightedTM + weightedPP + weightedWP + weightedLM + endBonus

	trace := Trace{TM: weightedTM, PP: weightedPP, WP: weightedWP, LM: weightedLM, EndBonus: endBonus, Score: newHyp.score}
	d.sink.Infof("expansion trace: tm=%g pp=%g wp=%g lm=%g end=%g score=%g",
		trace.TM, trace.PP, trace.WP, trace.LM, trace.EndBonus, trace.Score)

	return newHyp
}

// lmSequenceLogProb scores opt token-by-token against a sliding history
// seeded from words (spec.md §4.1 "Σ log p_int(t_i | history_i) with
// sliding history"). Returns the unweighted sum of log-probabilities;
// the caller applies w_lm once to the total.
func (d *Decoder) lmSequenceLogProb(words, opt []string) float64 {
	histLen := d.lm.NMax() - 1
	total := 0.0
	seq := append([]string{}, words...)
	for _, w := range opt {
		hist := lmHistory(seq, histLen)
		total += safeLog(d.lm.Prob(hist, w))
		seq = append(seq, w)
	}
	return total
}
