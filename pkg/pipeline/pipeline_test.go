package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thot-toolkit/thotgo/pkg/decoder"
)

// passthroughTM translates every source span to itself unchanged, so a
// pipeline test can assert exact output shapes without a real model.
type passthroughTM struct{}

func (passthroughTM) Targets(srcSpan []string) [][]string {
	return [][]string{append([]string{}, srcSpan...)}
}

func (passthroughTM) Prob(srcSpan, trgPhrase []string) float64 {
	return 0.9
}

type uniformLM struct{}

func (uniformLM) NMax() int                             { return 2 }
func (uniformLM) Prob(history []string, word string) float64 { return 0.5 }

func newTestDecoder() *decoder.Decoder {
	return decoder.New(passthroughTM{}, uniformLM{}, decoder.Weights{TM: 1, PP: 1, WP: 1, LM: 1})
}

func TestDetokenize_GluesTokensAndDecategorizesNumbers(t *testing.T) {
	d := newTestDecoder()
	result := Detokenize(d, []string{"I", "have", "123", "apples"})

	require.True(t, result.Found)
	// passthroughTM offers every span as one phrase and the phrase penalty
	// favors fewer phrases, so the best hypothesis is a single 4-token
	// phrase, glued without separators.
	assert.Equal(t, "Ihave123apples", result.Text)
	assert.Equal(t, []string{"I", "have", "123", "apples"}, result.Words)
}

func TestDetokenize_EmptyInput(t *testing.T) {
	d := newTestDecoder()
	result := Detokenize(d, nil)

	assert.True(t, result.Found)
	assert.Empty(t, result.Text)
	assert.Empty(t, result.Words)
}

func TestRecase_JoinsBestHypothesisWords(t *testing.T) {
	d := newTestDecoder()
	out, found := Recase(d, []string{"the", "cat", "sat"})

	require.True(t, found)
	assert.Equal(t, strings.Join([]string{"the", "cat", "sat"}, " "), out)
}

func TestRecase_EmptyInput(t *testing.T) {
	d := newTestDecoder()
	out, found := Recase(d, nil)

	assert.True(t, found)
	assert.Empty(t, out)
}
