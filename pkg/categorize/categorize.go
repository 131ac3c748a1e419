// Package categorize implements the rare-surface-form normalization
// pipeline of spec.md §4.5: a pure, stateless Categorizer that maps raw
// tokens to placeholder category tokens before scoring, and a
// Decategorizer that inverts the mapping using the decoder's phrase
// alignment.
//
// Grounded on the original `categorize_word`/`transform_word` functions in
// thot_utils/libs/thot_preproc.py, and on pkg/dafsa/dictionary.go's
// digit/alnum classification style (stdlib regexp/strconv — no ecosystem
// classifier library in the retrieved pack applies to single-token regex
// categorization).
package categorize

import (
	"regexp"
	"strconv"

	"github.com/thot-toolkit/thotgo/pkg/tokens"
)

// Number, Digit, Alfanum, CommonWord, Unk, BeginOfSent and EndOfSent are
// re-exported from pkg/tokens for callers that only need categorize's
// vocabulary (spec.md §4.3, §6).
const (
	Number      = tokens.Number
	Digit       = tokens.Digit
	Alfanum     = tokens.Alfanum
	CommonWord  = tokens.CommonWord
	Unk         = tokens.Unk
	BeginOfSent = tokens.BOS
	EndOfSent   = tokens.EOS
)

// alnumPattern matches a token made entirely of ASCII letters and digits,
// anchored at both ends (spec.md §4.5 rule 4); Go's regexp has no back-reference
// requirement here so a simple anchored match suffices.
var alnumPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

var digitPattern = regexp.MustCompile(`^[0-9]+$`)

// Mode selects which categorization rule set applies. Detokenize mode
// applies all six rules of §4.5; Recase mode omits rule 5 (the
// common-word rule), per spec.md's "recasing omits this rule".
type Mode int

const (
	Detokenize Mode = iota
	Recase
)

// Word classifies a single raw token into its category token, or returns
// the token unchanged if none of the rules fire. The rules are tested in
// the exact order given in spec.md §4.5.
func Word(token string, mode Mode) string {
	switch {
	case tokens.IsCategory(token):
		// Already a category placeholder: every rule below either can't
		// fire (placeholders contain no digits) or would wrongly re-fire
		// rule 5 on a long placeholder like <common_word>. Returning it
		// unchanged is what keeps Word idempotent on its own output
		// (spec.md §8 property 6), not just on raw surface tokens.
		return token
	case digitPattern.MatchString(token) && len(token) > 1:
		return Number
	case digitPattern.MatchString(token) && len(token) == 1:
		return Digit
	case isRealNumber(token):
		return Number
	case alnumPattern.MatchString(token) && hasDigit(token):
		return Alfanum
	case mode == Detokenize && len(token) > 5:
		return CommonWord
	default:
		return token
	}
}

// Tokens categorizes every token in a sequence, preserving order and
// length. Idempotent per spec.md §8 property 6: Word(Word(t)) == Word(t).
func Tokens(tokens []string, mode Mode) []string {
	return TokensMarked(tokens, nil, mode)
}

// TokensMarked is Tokens restricted to the positions categorizable marks
// true; a categorizable of nil means "categorize every position" (Tokens'
// behavior). Positions marked false pass through unchanged — this is how
// an annotation-aware caller keeps tag atoms and <length_limit> integers
// out of categorization (spec.md §6: "the integer is preserved verbatim
// and is excluded from categorization... a directive, not translatable
// text").
func TokensMarked(tokens []string, categorizable []bool, mode Mode) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if categorizable != nil && !categorizable[i] {
			out[i] = t
			continue
		}
		out[i] = Word(t, mode)
	}
	return out
}

// IsCategory reports whether word is one of the reserved category
// placeholders (spec.md §4.3 is_categ).
func IsCategory(word string) bool {
	return tokens.IsCategory(word)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// isRealNumber reports whether s parses as a real number, accepting a
// decimal point, sign, and scientific notation (spec.md §4.5 rule 3),
// matching the original's `float(s)` try/except.
func isRealNumber(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
