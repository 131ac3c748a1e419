// Package lm implements the LanguageScorer of spec.md §4.3: a wrapper
// around an opaque n-gram count provider (persistent storage and
// estimation of counts are explicitly out of scope, spec.md §1) that
// exposes the Jelinek-Mercer-interpolated p(word|history) the decoder
// needs.
package lm

// Provider is the oracle spec.md §4.3 specifies the decoder against: a
// single read-only query over a space-joined n-gram. Persistent storage
// and count estimation are the caller's concern; Provider only promises
// this one lookup.
type Provider interface {
	// Count returns the corpus count of ngram (space-joined tokens, order
	// 0..NMax), >= 0. The empty ngram returns the corpus token total.
	Count(ngram string) int
}

// DefaultNMax is the N_MAX constant of spec.md §4.3/§6: the highest
// n-gram order the interpolation mixes.
const DefaultNMax = 2

// DefaultLambda is the Jelinek-Mercer mixing weight of spec.md §4.3/§6,
// clamped to [0, 0.99].
const DefaultLambda = 0.5
