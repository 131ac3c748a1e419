package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thot-toolkit/thotgo/pkg/decoder"
)

func TestDecategorize_RestoresLiteralNumber(t *testing.T) {
	src := []string{"I", "have", "123", "apples"}
	trg := []string{"I", "have", Number, "apples"}
	align := decoder.AlignmentInfo{
		SrcSegms: []decoder.SrcSegment{{Left: 0, Right: 0}, {Left: 1, Right: 1}, {Left: 2, Right: 2}, {Left: 3, Right: 3}},
		TrgCuts:  []int{1, 2, 3, 4},
	}

	out := Decategorize(src, trg, align, Detokenize)
	assert.Equal(t, []string{"I", "have", "123", "apples"}, out)
}

func TestDecategorize_ReplicateIndexPicksSuccessiveCandidates(t *testing.T) {
	// A single phrase spans two source numbers; the decoder emitted the
	// category token twice in that phrase, so each occurrence should pick
	// up the next matching source token left-to-right.
	src := []string{"12", "34"}
	trg := []string{Number, Number}
	align := decoder.AlignmentInfo{
		SrcSegms: []decoder.SrcSegment{{Left: 0, Right: 1}},
		TrgCuts:  []int{2},
	}

	out := Decategorize(src, trg, align, Detokenize)
	assert.Equal(t, []string{"12", "34"}, out)
}

func TestDecategorize_NoCandidateFallsBackToCategoryToken(t *testing.T) {
	src := []string{"hello"}
	trg := []string{Number}
	align := decoder.AlignmentInfo{
		SrcSegms: []decoder.SrcSegment{{Left: 0, Right: 0}},
		TrgCuts:  []int{1},
	}

	out := Decategorize(src, trg, align, Detokenize)
	assert.Equal(t, []string{Number}, out)
}

func TestDecategorize_NonCategoryWordsPassThroughUnchanged(t *testing.T) {
	src := []string{"cat", "sat"}
	trg := []string{"cat", "sat"}
	align := decoder.AlignmentInfo{
		SrcSegms: []decoder.SrcSegment{{Left: 0, Right: 0}, {Left: 1, Right: 1}},
		TrgCuts:  []int{1, 2},
	}

	out := Decategorize(src, trg, align, Detokenize)
	assert.Equal(t, trg, out)
}

func TestCategorizeThenDecategorize_IsLeftInverseForLiteralTokens(t *testing.T) {
	// Each source token maps to its own one-token phrase, so the
	// categorize -> decategorize round trip must reproduce the original
	// source exactly, including tokens that were categorized away.
	src := []string{"I", "have", "123", "and", "7", "apples"}
	categorized := Tokens(src, Detokenize)

	align := decoder.AlignmentInfo{
		SrcSegms: make([]decoder.SrcSegment, len(src)),
		TrgCuts:  make([]int, len(src)),
	}
	for i := range src {
		align.SrcSegms[i] = decoder.SrcSegment{Left: i, Right: i}
		align.TrgCuts[i] = i + 1
	}

	restored := Decategorize(src, categorized, align, Detokenize)
	assert.Equal(t, src, restored)
}
