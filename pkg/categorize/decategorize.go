package categorize

import "github.com/thot-toolkit/thotgo/pkg/decoder"

// Decategorize restores literal surface words into a decoded target
// sequence by exploiting the decoder's phrase alignment (spec.md §4.5).
// srcTokens is the original (uncategorized) source sentence; trgWords is
// the decoder's output word sequence; align is the AlignmentInfo the
// decoder produced for the hypothesis that generated trgWords; mode must
// match the Mode used to categorize srcTokens so that candidate source
// tokens are classified identically to how the decoder's target
// categories were produced.
//
// Grounded on the original's `decategorize`/`decategorize_word`/
// `extract_categ_words_of_segm`, reading AlignmentInfo's structured
// SrcSegms/TrgCuts directly instead of re-parsing a formatted dump.
func Decategorize(srcTokens, trgWords []string, align decoder.AlignmentInfo, mode Mode) []string {
	return DecategorizeMarked(srcTokens, nil, trgWords, align, mode)
}

// DecategorizeMarked is Decategorize restricted to src positions
// categorizable marks true; a categorizable of nil means "every src
// position was categorized" (Decategorize's behavior). A src position
// marked false (a tag atom or <length_limit> integer, spec.md §6) was
// never a categorization candidate in the first place and must never be
// offered as a substitution, even if it happens to satisfy a category
// rule (e.g. a long tag name matching the common-word-length rule).
func DecategorizeMarked(srcTokens []string, categorizable []bool, trgWords []string, align decoder.AlignmentInfo, mode Mode) []string {
	out := make([]string, len(trgWords))
	for t, word := range trgWords {
		if !IsCategory(word) {
			out[t] = word
			continue
		}
		out[t] = decategorizeWord(srcTokens, categorizable, trgWords, align, mode, t, word)
	}
	return out
}

// decategorizeWord implements spec.md §4.5 steps 1-5 for a single target
// position t whose output token is the category word.
func decategorizeWord(srcTokens []string, categorizable []bool, trgWords []string, align decoder.AlignmentInfo, mode Mode, t int, word string) string {
	k, ok := phraseIndexOf(align.TrgCuts, t)
	if !ok {
		// No phrase covers this target position: degenerate fallback
		// (spec.md §4.5 step 5, same as the no-candidate case).
		return word
	}

	seg := align.SrcSegms[k]
	candidates := categoryMatchesInSpan(srcTokens, categorizable, seg.Left, seg.Right, mode, word)

	phraseStart := 0
	if k > 0 {
		phraseStart = align.TrgCuts[k-1]
	}
	r := replicateIndex(trgWords, phraseStart, t, word)

	if r < len(candidates) {
		return candidates[r]
	}
	// Step 5: no source candidate exists at this replicate index — emit
	// the target category token unchanged (spec.md §9's resolved
	// ambiguity, SPEC_FULL.md §5).
	return word
}

// phraseIndexOf returns the index k such that trgCuts[k-1] <= t < trgCuts[k]
// (with trgCuts[-1] treated as 0), i.e. the phrase that produced target
// position t.
func phraseIndexOf(trgCuts []int, t int) (int, bool) {
	prev := 0
	for k, cut := range trgCuts {
		if t >= prev && t < cut {
			return k, true
		}
		prev = cut
	}
	return 0, false
}

// categoryMatchesInSpan enumerates, in left-to-right order, the source
// tokens within [left, right] (0-based inclusive) whose categorization
// under mode equals category (spec.md §4.5 step 3). Positions marked
// false in categorizable are skipped entirely: they were never
// categorized, so they can never be a candidate original for category.
func categoryMatchesInSpan(srcTokens []string, categorizable []bool, left, right int, mode Mode, category string) []string {
	var out []string
	for i := left; i <= right && i < len(srcTokens); i++ {
		if i < 0 {
			continue
		}
		if categorizable != nil && !categorizable[i] {
			continue
		}
		if Word(srcTokens[i], mode) == category {
			out = append(out, srcTokens[i])
		}
	}
	return out
}

// replicateIndex counts how many target tokens in [phraseStart, t) equal
// category — the "replicate index" r of spec.md §4.5 step 4.
func replicateIndex(trgWords []string, phraseStart, t int, category string) int {
	r := 0
	for i := phraseStart; i < t; i++ {
		if trgWords[i] == category {
			r++
		}
	}
	return r
}
