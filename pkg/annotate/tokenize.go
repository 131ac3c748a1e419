package annotate

import (
	"regexp"
	"strings"
)

// wordOrPunct is the original's Tokenizer.RX = r'(\w+)|([^\w\s]+)': a
// maximal word run, or a maximal run of non-word non-space characters.
// Reproduced exactly (SPEC_FULL.md §4) since nothing else in the pack
// defines a tokenization rule and the original is authoritative here.
var wordOrPunct = regexp.MustCompile(`\w+|[^\w\s]+`)

// TokenizeText splits plain (non-tag) text into word/punctuation tokens,
// the tokenizer half of the original's Tokenizer class.
func TokenizeText(s string) []string {
	return wordOrPunct.FindAllString(s, -1)
}

// Tokenize splits an annotated line into a flat token stream (spec.md
// §6): KindText atoms are tokenized by TokenizeText; KindTag and
// KindLiteral atoms pass through as single tokens unchanged.
func Tokenize(annotated string) []string {
	tokens, _ := TokenizeMarked(annotated)
	return tokens
}

// TokenizeMarked is Tokenize plus a parallel per-token mask reporting
// whether each token came from translatable KindText (true) or from a
// tag/length-limit atom (false). Categorization must only ever run on
// the true-marked tokens (spec.md §6: length-limit integers "excluded
// from categorization"; tag atoms are never translatable text).
func TokenizeMarked(annotated string) ([]string, []bool) {
	var tokens []string
	var categorizable []bool
	for _, a := range Parse(annotated) {
		switch a.Kind {
		case KindText:
			for _, t := range TokenizeText(a.Text) {
				tokens = append(tokens, t)
				categorizable = append(categorizable, true)
			}
		default:
			if t := strings.TrimSpace(a.Text); t != "" {
				tokens = append(tokens, t)
				categorizable = append(categorizable, false)
			}
		}
	}
	return tokens, categorizable
}

// Lowercase lowercases only the KindText atoms of an annotated line,
// leaving tag and length-limit atoms untouched, then rejoins with single
// spaces — the original's `lowercase`.
func Lowercase(annotated string) string {
	atoms := Parse(annotated)
	parts := make([]string, 0, len(atoms))
	for _, a := range atoms {
		switch a.Kind {
		case KindText:
			if t := strings.TrimSpace(strings.ToLower(a.Text)); t != "" {
				parts = append(parts, t)
			}
		default:
			if t := strings.TrimSpace(a.Text); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}
