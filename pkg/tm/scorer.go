package tm

import (
	"strings"

	"github.com/thot-toolkit/thotgo/pkg/decoder"
)

// Scorer wraps a Provider and exposes the decoder.TranslationModel
// contract: candidate target phrases for a source span, and the
// TM-smoothed conditional p̃(trg|src) of spec.md §4.2. Grounded on the
// shape of pkg/resorank.Scorer (config/index/cache fields, thin
// query/derive methods) and on the original's TransModel class.
type Scorer struct {
	provider Provider
	floor    float64
}

// New wraps provider in a Scorer, smoothing with TM_FLOOR (spec.md
// §4.2/§6) unless floor overrides it. A non-positive floor keeps the
// spec default: unlike the LM's lambda, TM_FLOOR is a probability and
// has no legitimate zero-or-negative value, so zero unambiguously means
// "use the default".
func New(provider Provider, floor float64) *Scorer {
	if floor <= 0 {
		floor = Floor
	}
	return &Scorer{provider: provider, floor: floor}
}

// Targets returns the candidate target phrases for a source span, each
// split into target tokens (decoder.TranslationModel contract). The
// decoder itself handles the case of zero results (§7's length-1
// pass-through fallback); Scorer never synthesizes options.
func (s *Scorer) Targets(srcSpan []string) [][]string {
	raw := s.provider.Targets(join(srcSpan))
	out := make([][]string, 0, len(raw))
	for _, phrase := range raw {
		out = append(out, strings.Fields(phrase))
	}
	return out
}

// Prob returns the TM-smoothed p̃(trgPhrase|srcSpan) of spec.md §4.2:
// the Scorer's floor if the source phrase was never observed, else
// (1 - floor) * joint/src.
func (s *Scorer) Prob(srcSpan, trgPhrase []string) float64 {
	src := join(srcSpan)
	srcCount := s.provider.SrcCount(src)
	if srcCount <= 0 {
		return s.floor
	}
	joint := s.provider.JointCount(src, join(trgPhrase))
	return (1 - s.floor) * (float64(joint) / float64(srcCount))
}

// RawProb returns the unsmoothed p(trg|src) = joint/src (0 when src was
// never observed), matching the original's obtain_trgsrc_prob. Exposed
// for diagnostics/tests; the decoder always uses the smoothed Prob.
func (s *Scorer) RawProb(srcSpan, trgPhrase []string) float64 {
	src := join(srcSpan)
	srcCount := s.provider.SrcCount(src)
	if srcCount <= 0 {
		return 0
	}
	joint := s.provider.JointCount(src, join(trgPhrase))
	return float64(joint) / float64(srcCount)
}

func join(tokens []string) string {
	return strings.Join(tokens, " ")
}

var _ decoder.TranslationModel = (*Scorer)(nil)
