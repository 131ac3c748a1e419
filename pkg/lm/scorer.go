package lm

import (
	"strings"

	"github.com/thot-toolkit/thotgo/pkg/decoder"
)

// Scorer wraps a Provider and exposes the decoder.LanguageModel contract:
// Jelinek-Mercer-interpolated p(word|history) over orders 1..NMax
// (spec.md §4.3). Grounded on the shape of tm.Scorer (thin wrapper over an
// oracle Provider) and the original's LangModel class.
type Scorer struct {
	provider Provider
	nMax     int
	lambda   float64

	// EmptyHistoryFloor is used in place of 1/count("") when the oracle
	// does not expose a corpus token total under the empty n-gram key
	// (spec.md §9 open question, resolved in SPEC_FULL.md §5).
	EmptyHistoryFloor float64

	// UnkTransform rewrites a token with zero unigram count to a
	// configured out-of-vocabulary placeholder before scoring. Off by
	// default, matching the original's detokenize/recase callers
	// (SPEC_FULL.md §4).
	UnkTransform func(token string) string

	// PreProcess is an identity-by-default hook applied to the translated
	// word array before LM scoring (SPEC_FULL.md §4, lm_preproc).
	PreProcess func(words []string) []string
}

// New wraps provider in a Scorer configured with nMax and lambda, clamping
// lambda to spec.md §4.3's [0, 0.99] range.
func New(provider Provider, nMax int, lambda float64) *Scorer {
	if nMax <= 0 {
		nMax = DefaultNMax
	}
	if lambda < 0 {
		lambda = 0
	}
	if lambda > 0.99 {
		lambda = 0.99
	}
	return &Scorer{
		provider:          provider,
		nMax:              nMax,
		lambda:            lambda,
		EmptyHistoryFloor: 1e-6,
	}
}

// NMax implements decoder.LanguageModel.
func (s *Scorer) NMax() int { return s.nMax }

// Prob implements decoder.LanguageModel: the Jelinek-Mercer-interpolated
// p_int(word|history) of spec.md §4.3, over orders 1..NMax. history is
// the full available left-context, oldest-first; only the last NMax-1
// tokens are used, per the n-gram state definition.
func (s *Scorer) Prob(history []string, word string) float64 {
	if s.PreProcess != nil {
		history = s.PreProcess(append([]string{}, history...))
	}
	if s.UnkTransform != nil {
		word = s.transformIfUnseen(word)
		transformed := make([]string, len(history))
		for i, h := range history {
			transformed[i] = s.transformIfUnseen(h)
		}
		history = transformed
	}

	h := trim(history, s.nMax-1)
	return s.interpolate(h, word)
}

// transformIfUnseen rewrites tok via UnkTransform when its unigram count
// is zero, matching the original's lm_transform_word_unk.
func (s *Scorer) transformIfUnseen(tok string) string {
	if s.provider.Count(tok) > 0 {
		return tok
	}
	return s.UnkTransform(tok)
}

// trim keeps at most the last n entries of h.
func trim(h []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(h) <= n {
		return h
	}
	return h[len(h)-n:]
}

// interpolate implements p_int recursively: base case is the empty
// history (maximum-likelihood unigram, spec.md §4.3), recursive case
// mixes the highest-order ML estimate with the lower-order interpolation
// via drop_oldest(h).
func (s *Scorer) interpolate(h []string, word string) float64 {
	if len(h) == 0 {
		return s.mle(h, word)
	}
	higher := s.mle(h, word)
	lower := s.interpolate(h[1:], word)
	return s.lambda*higher + (1-s.lambda)*lower
}

// mle is the maximum-likelihood estimate p(w|h) = count(h++w)/count(h),
// spec.md §4.3, with the empty-history special case 1/count("").
func (s *Scorer) mle(h []string, word string) float64 {
	if len(h) == 0 {
		denom := s.provider.Count("")
		if denom <= 0 {
			return s.EmptyHistoryFloor
		}
		return 1 / float64(denom)
	}
	denom := s.provider.Count(strings.Join(h, " "))
	if denom <= 0 {
		return 0
	}
	numer := s.provider.Count(strings.Join(append(append([]string{}, h...), word), " "))
	return float64(numer) / float64(denom)
}

var _ decoder.LanguageModel = (*Scorer)(nil)
