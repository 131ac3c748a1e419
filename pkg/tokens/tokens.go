// Package tokens centralizes the reserved sentinel and category tokens of
// spec.md §6 ("Wire/format constants to reproduce exactly") so the
// decoder, scorers, and categorizer never disagree on their spelling.
package tokens

const (
	// BOS is prepended to every hypothesis's LM history (spec.md §4.3).
	BOS = "<bos>"
	// EOS scores the sentence-final transition on completion (spec.md §4.3).
	EOS = "<eos>"
	// Unk substitutes for an out-of-vocabulary word under the optional
	// UnkTransform hook (spec.md §4.3, SPEC_FULL.md §4).
	Unk = "<unk>"

	// Number, Digit, Alfanum, CommonWord are the category placeholders
	// of spec.md §4.5.
	Number     = "<number>"
	Digit      = "<digit>"
	Alfanum    = "<alfanum>"
	CommonWord = "<common_word>"
)

// categorySet is the set of tokens considered "a category" by IsCategory
// (spec.md §4.3 `is_categ`).
var categorySet = map[string]bool{
	Number:     true,
	Digit:      true,
	Alfanum:    true,
	CommonWord: true,
}

// IsCategory reports whether word is one of the reserved category
// placeholders.
func IsCategory(word string) bool {
	return categorySet[word]
}
