package tm

import (
	"testing"

	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

func TestSaveSnapshotAndLoadProvider_RoundTrip(t *testing.T) {
	fs, err := mem.NewFS()
	require.NoError(t, err)

	p := NewMemoryProvider()
	p.Observe("casa", "house", 2)
	p.Observe("casa", "home", 1)
	p.Observe("perro", "dog", 5)

	require.NoError(t, SaveSnapshot(fs, "tm.bin", p))

	loaded, err := LoadProvider(fs, "tm.bin")
	require.NoError(t, err)

	require.Equal(t, p.SrcCount("casa"), loaded.SrcCount("casa"))
	require.Equal(t, p.JointCount("casa", "house"), loaded.JointCount("casa", "house"))
	require.Equal(t, p.SrcCount("perro"), loaded.SrcCount("perro"))
}
