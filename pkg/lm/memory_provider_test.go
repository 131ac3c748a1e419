package lm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryProvider_ObserveAccumulates(t *testing.T) {
	p := NewMemoryProvider()
	p.Observe("the cat", 3)
	p.Observe("the cat", 2)

	assert.Equal(t, 5, p.Count("the cat"))
	assert.Equal(t, 0, p.Count("never seen"))
}

func TestMemoryProvider_NegativeDeltaDecrements(t *testing.T) {
	p := NewMemoryProvider()
	p.Observe("the", 5)
	p.Observe("the", -2)

	assert.Equal(t, 3, p.Count("the"))
}
