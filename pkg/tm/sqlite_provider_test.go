package tm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteProvider_ObserveAndQuery(t *testing.T) {
	p, err := OpenSQLiteProvider(":memory:")
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Observe("casa", "house", 3))
	require.NoError(t, p.Observe("casa", "home", 1))
	require.NoError(t, p.Observe("casa", "house", 2))

	assert.Equal(t, 6, p.SrcCount("casa"))
	assert.Equal(t, 5, p.JointCount("casa", "house"))
	assert.Equal(t, 1, p.JointCount("casa", "home"))
	assert.ElementsMatch(t, []string{"house", "home"}, p.Targets("casa"))
}

func TestSQLiteProvider_UnknownPhraseIsZero(t *testing.T) {
	p, err := OpenSQLiteProvider(":memory:")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, 0, p.SrcCount("nunca"))
	assert.Equal(t, 0, p.JointCount("nunca", "never"))
	assert.Nil(t, p.Targets("nunca"))
}
