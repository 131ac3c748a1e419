package lm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteProvider_ObserveAndQuery(t *testing.T) {
	p, err := OpenSQLiteProvider(":memory:")
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Observe("the", 10))
	require.NoError(t, p.Observe("the", 5))
	require.NoError(t, p.Observe("the cat", 3))

	assert.Equal(t, 15, p.Count("the"))
	assert.Equal(t, 3, p.Count("the cat"))
	assert.Equal(t, 0, p.Count("never seen"))
}

func TestSQLiteProvider_EmptyNgramIsValidKey(t *testing.T) {
	p, err := OpenSQLiteProvider(":memory:")
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Observe("", 100))
	assert.Equal(t, 100, p.Count(""))
}
