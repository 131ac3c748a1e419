// Package config loads the decoder's tunable constants from a YAML
// document, the same way a deployed instance of this decoder would be
// configured rather than recompiled.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the 4-tuple (w_tm, w_pp, w_wp, w_lm) of spec §3. A
// zero-valued Weights is not a valid configuration; Resolved substitutes
// the uniform fallback per §3/§7.
type Weights struct {
	TM float64 `yaml:"tm"`
	PP float64 `yaml:"pp"`
	WP float64 `yaml:"wp"`
	LM float64 `yaml:"lm"`
}

// Uniform is the fallback weight vector the decoder substitutes when the
// caller's weight vector doesn't have exactly 4 entries (§3, §7).
var Uniform = Weights{TM: 1, PP: 1, WP: 1, LM: 1}

// DecoderConfig is the full set of tunable constants, loadable from YAML.
// Every field has the default from spec.md §6 when zero-valued (see
// Resolved).
type DecoderConfig struct {
	Weights      Weights `yaml:"weights"`
	NMax         int     `yaml:"n_max"`
	Lambda       float64 `yaml:"lambda"`
	MaxPhraseLen int     `yaml:"max_phrase_len"`
	MaxIters     int     `yaml:"max_iters"`
	TMFloor      float64 `yaml:"tm_floor"`
}

// Defaults returns the spec-mandated constants (§4.1, §4.2, §4.3, §6).
func Defaults() DecoderConfig {
	return DecoderConfig{
		Weights:      Weights{TM: 1, PP: 1, WP: 1, LM: 1},
		NMax:         2,
		Lambda:       0.5,
		MaxPhraseLen: 7,
		MaxIters:     100000,
		TMFloor:      1e-6,
	}
}

// yamlConfig mirrors DecoderConfig with pointer fields so Load can tell
// "absent from the document" (nil, keep the default) apart from
// "explicitly set to the zero value" (non-nil, honor it) — the
// distinction DecoderConfig.Resolved's zero-means-unset fields (notably
// Lambda, spec.md §4.3's valid range [0, 0.99] includes 0) cannot make on
// their own, since a plain float64 has no way to represent "unset".
type yamlConfig struct {
	Weights      *Weights `yaml:"weights"`
	NMax         *int     `yaml:"n_max"`
	Lambda       *float64 `yaml:"lambda"`
	MaxPhraseLen *int     `yaml:"max_phrase_len"`
	MaxIters     *int     `yaml:"max_iters"`
	TMFloor      *float64 `yaml:"tm_floor"`
}

// Load reads a YAML document at path and overlays it onto Defaults();
// fields absent from the document keep their default value, and fields
// present (including an explicit zero like `lambda: 0`) are honored
// exactly as written. The weights block is the exception: it is taken as
// a whole (entries missing from it are zero), and an all-zero block keeps
// the default weights.
func Load(path string) (DecoderConfig, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw yamlConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if raw.Weights != nil && *raw.Weights != (Weights{}) {
		cfg.Weights = *raw.Weights
	}
	if raw.NMax != nil {
		cfg.NMax = *raw.NMax
	}
	if raw.Lambda != nil {
		cfg.Lambda = *raw.Lambda
	}
	if raw.MaxPhraseLen != nil {
		cfg.MaxPhraseLen = *raw.MaxPhraseLen
	}
	if raw.MaxIters != nil {
		cfg.MaxIters = *raw.MaxIters
	}
	if raw.TMFloor != nil {
		cfg.TMFloor = *raw.TMFloor
	}

	return cfg, nil
}

// Resolved returns a copy of c with zero-valued fields replaced by the
// spec-mandated defaults, and an invalid (all-zero) weight vector replaced
// by Uniform per §3's malformed-weights contract. Resolved cannot tell an
// explicit zero from an unset field (a plain float64 carries no such
// distinction) — callers that need to honor an explicit `lambda: 0`
// should use Load, which resolves that ambiguity against the YAML
// document directly instead of going through Resolved.
func (c DecoderConfig) Resolved() DecoderConfig {
	d := Defaults()

	if c.NMax <= 0 {
		c.NMax = d.NMax
	}
	if c.Lambda == 0 {
		c.Lambda = d.Lambda
	}
	if c.MaxPhraseLen <= 0 {
		c.MaxPhraseLen = d.MaxPhraseLen
	}
	if c.MaxIters <= 0 {
		c.MaxIters = d.MaxIters
	}
	if c.TMFloor == 0 {
		c.TMFloor = d.TMFloor
	}
	if c.Weights == (Weights{}) {
		c.Weights = d.Weights
	}

	return c
}
