package tm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProvider_ObserveAccumulatesCounts(t *testing.T) {
	p := NewMemoryProvider()
	p.Observe("casa", "house", 2)
	p.Observe("casa", "house", 1)
	p.Observe("casa", "home", 1)

	assert.Equal(t, 4, p.SrcCount("casa"))
	assert.Equal(t, 3, p.JointCount("casa", "house"))
	assert.Equal(t, 1, p.JointCount("casa", "home"))
}

func TestMemoryProvider_TargetsSortedAndEmptyForUnknown(t *testing.T) {
	p := NewMemoryProvider()
	p.Observe("casa", "house", 1)
	p.Observe("casa", "home", 1)

	assert.Equal(t, []string{"home", "house"}, p.Targets("casa"))
	assert.Nil(t, p.Targets("unknown"))
	assert.Equal(t, 0, p.SrcCount("unknown"))
	assert.Equal(t, 0, p.JointCount("casa", "unknown"))
}

func TestMemoryProvider_SnapshotRoundTrip(t *testing.T) {
	p := NewMemoryProvider()
	p.Observe("casa", "house", 2)
	p.Observe("casa", "home", 1)
	p.Observe("perro", "dog", 5)

	snap := p.ToSnapshot()

	restored := NewMemoryProvider()
	restored.LoadSnapshot(snap)

	require.Equal(t, p.SrcCount("casa"), restored.SrcCount("casa"))
	assert.Equal(t, p.JointCount("casa", "house"), restored.JointCount("casa", "house"))
	assert.Equal(t, p.JointCount("casa", "home"), restored.JointCount("casa", "home"))
	assert.Equal(t, p.SrcCount("perro"), restored.SrcCount("perro"))
	assert.ElementsMatch(t, p.Targets("casa"), restored.Targets("casa"))
}
