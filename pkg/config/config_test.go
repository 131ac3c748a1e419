package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_MatchSpecConstants(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, Uniform, cfg.Weights)
	assert.Equal(t, 2, cfg.NMax)
	assert.Equal(t, 0.5, cfg.Lambda)
	assert.Equal(t, 7, cfg.MaxPhraseLen)
	assert.Equal(t, 100000, cfg.MaxIters)
	assert.Equal(t, 1e-6, cfg.TMFloor)
}

func TestResolved_FillsZeroFieldsWithDefaults(t *testing.T) {
	var cfg DecoderConfig
	resolved := cfg.Resolved()

	assert.Equal(t, Defaults(), resolved)
}

func TestResolved_PreservesExplicitNonZeroFields(t *testing.T) {
	cfg := DecoderConfig{
		Weights:      Weights{TM: 2, PP: 3, WP: 4, LM: 5},
		NMax:         3,
		Lambda:       0.7,
		MaxPhraseLen: 5,
		MaxIters:     10,
		TMFloor:      1e-3,
	}

	resolved := cfg.Resolved()
	assert.Equal(t, cfg, resolved)
}

func TestLoad_OverlaysYAMLOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decoder.yaml")
	contents := "weights:\n  tm: 2\n  pp: 1\n  wp: 1\n  lm: 1\nn_max: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cfg.Weights.TM)
	assert.Equal(t, 3, cfg.NMax)
	// Lambda was absent from the document, so it keeps its default.
	assert.Equal(t, 0.5, cfg.Lambda)
}

func TestLoad_MissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/decoder.yaml")
	assert.Error(t, err)
}
