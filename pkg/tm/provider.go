// Package tm implements the TranslationScorer of spec.md §4.2: a wrapper
// around an opaque translation-model provider (persistent storage and
// estimation of phrase counts are explicitly out of scope, spec.md §1) that
// exposes the smoothed p(target|source) the decoder needs.
package tm

// Provider is the oracle spec.md §4.2 specifies the decoder against: three
// read-only queries over space-joined source/target phrases. Persistent
// storage and count estimation are the caller's concern; Provider only
// promises these three lookups.
type Provider interface {
	// Targets returns the unordered set of candidate target phrases for
	// srcPhrase (space-joined source tokens).
	Targets(srcPhrase string) []string
	// SrcCount returns the corpus count of srcPhrase (>= 0).
	SrcCount(srcPhrase string) int
	// JointCount returns the corpus joint count of (srcPhrase, trgPhrase) (>= 0).
	JointCount(srcPhrase, trgPhrase string) int
}

// Floor is the TM_FLOOR constant of spec.md §4.2/§6: the smoothed
// probability returned when a source phrase has never been observed.
const Floor = 1e-6
