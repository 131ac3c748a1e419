// Package pipeline wires the per-line drivers of spec.md §2 item 7 / §6:
// detokenize (Categorizer → Decoder → Decategorizer) and recase (Decoder
// only). Grounded on the original's Decoder.detokenize/Decoder.recase
// methods and on cmd/storetest/main.go's "wire components, report
// results" shape.
package pipeline

import (
	"strings"

	"github.com/thot-toolkit/thotgo/pkg/categorize"
	"github.com/thot-toolkit/thotgo/pkg/decoder"
)

// DetokenizeResult is one line's output from Detokenize.
type DetokenizeResult struct {
	// Text is the reconstructed line: source tokens glued according to
	// the decoder's phrase segmentation (spec.md §4.1 "Output surface"
	// (b), obtain_detok_sent) — concatenated without a separator within
	// a phrase, space-joined across phrases.
	Text string
	// Words is the decoder's output word sequence with every category
	// placeholder restored to a literal source token via the
	// Decategorizer (spec.md §4.5).
	Words []string
	// Found reports whether the search reached a complete hypothesis. If
	// false, Text and Words are both empty and the caller should fall
	// back to emitting the input line unchanged (spec.md §7: "no
	// detokenizations were found").
	Found bool
}

// Detokenize runs the categorizer → decoder → decategorizer pipeline
// over one already-tokenized line (spec.md §6: "whitespace-split into
// tokens"). Every token is treated as categorizable text; callers that
// split with pkg/annotate's annotation-aware tokenizer must use
// DetokenizeMarked instead, so tag atoms and <length_limit> integers
// never enter categorization (spec.md §6, §8-E5).
func Detokenize(d *decoder.Decoder, tokens []string) DetokenizeResult {
	return DetokenizeMarked(d, tokens, nil)
}

// DetokenizeMarked is Detokenize restricted to positions categorizable
// marks true (spec.md §6 annotation precondition): a categorizable of
// nil categorizes every token (Detokenize's behavior); positions marked
// false pass through categorization and decategorization unchanged, so a
// tag atom or length-limit integer is scored by its literal surface form
// and can never be mistaken for — or substituted from — a category.
func DetokenizeMarked(d *decoder.Decoder, tokens []string, categorizable []bool) DetokenizeResult {
	if len(tokens) == 0 {
		return DetokenizeResult{Found: true}
	}

	categorized := categorize.TokensMarked(tokens, categorizable, categorize.Detokenize)

	nblist := d.ObtainNBList(categorized, 1)
	if len(nblist) == 0 {
		return DetokenizeResult{}
	}
	best := nblist[0]

	text := decoder.ObtainDetokSent(tokens, best)
	align := decoder.ExtractAlignment(best)
	words := categorize.DecategorizeMarked(tokens, categorizable, best.Words(), align, categorize.Detokenize)

	return DetokenizeResult{Text: text, Words: words, Found: true}
}

// Recase runs the decoder directly over an already-lowercased,
// already-tokenized line — no categorization (spec.md §6). It returns
// the best hypothesis's word sequence, space-joined, and whether a
// complete hypothesis was found.
func Recase(d *decoder.Decoder, tokens []string) (string, bool) {
	if len(tokens) == 0 {
		return "", true
	}

	nblist := d.ObtainNBList(tokens, 1)
	if len(nblist) == 0 {
		return "", false
	}
	return strings.Join(nblist[0].Words(), " "), true
}
