package tm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorer_Prob_FloorsUnseenSource(t *testing.T) {
	provider := NewMemoryProvider()
	scorer := New(provider, 0)

	p := scorer.Prob([]string{"hola"}, []string{"hello"})
	assert.Equal(t, Floor, p)
}

func TestScorer_Prob_SmoothedBySrcCount(t *testing.T) {
	provider := NewMemoryProvider()
	provider.Observe("hola", "hello", 3)
	provider.Observe("hola", "hi", 1)
	scorer := New(provider, 0)

	p := scorer.Prob([]string{"hola"}, []string{"hello"})
	want := (1 - Floor) * (3.0 / 4.0)
	assert.InDelta(t, want, p, 1e-12)
}

func TestScorer_RawProb_UnsmoothedAndZeroForUnseen(t *testing.T) {
	provider := NewMemoryProvider()
	provider.Observe("hola", "hello", 3)
	provider.Observe("hola", "hi", 1)
	scorer := New(provider, 0)

	assert.InDelta(t, 0.75, scorer.RawProb([]string{"hola"}, []string{"hello"}), 1e-12)
	assert.Equal(t, 0.0, scorer.RawProb([]string{"adios"}, []string{"bye"}))
}

func TestScorer_Targets_SplitsMultiWordPhrases(t *testing.T) {
	provider := NewMemoryProvider()
	provider.Observe("buenos dias", "good morning", 1)
	scorer := New(provider, 0)

	got := scorer.Targets([]string{"buenos", "dias"})
	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal([]string{"good", "morning"}, got[0])
}

func TestScorer_Targets_EmptyForUnseenSpan(t *testing.T) {
	provider := NewMemoryProvider()
	scorer := New(provider, 0)

	assert.Empty(t, scorer.Targets([]string{"nunca", "visto"}))
}

func TestScorer_Prob_CustomFloorOverridesDefault(t *testing.T) {
	provider := NewMemoryProvider()
	scorer := New(provider, 0.25)

	p := scorer.Prob([]string{"hola"}, []string{"hello"})
	assert.Equal(t, 0.25, p)
}
