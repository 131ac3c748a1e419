package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thot-toolkit/thotgo/pkg/config"
	"github.com/thot-toolkit/thotgo/pkg/decoder"
	"github.com/thot-toolkit/thotgo/pkg/lm"
	"github.com/thot-toolkit/thotgo/pkg/tm"
)

// app bundles a constructed Decoder with the model handles it needs
// closed on shutdown. Grounded on _examples/mattdennewitz-mcpmydocs's
// internal/app "wire components, defer Close" shape
// (cmd/index.go: "application, cfg, err := initializeApp(); defer application.Close()").
type app struct {
	decoder *decoder.Decoder
	tmDB    *tm.SQLiteProvider
	lmDB    *lm.SQLiteProvider
}

func (a *app) Close() error {
	if err := a.tmDB.Close(); err != nil {
		return err
	}
	return a.lmDB.Close()
}

// newApp loads the decoder's configuration and opens its two model
// oracles, wiring them into a Decoder exactly as SPEC_FULL.md §3
// prescribes (tm/lm SQLiteProvider, diagnostics.Sink for weights/trace).
func newApp() (*app, error) {
	cfg := config.Defaults()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	tmProvider, err := tm.OpenSQLiteProvider(tmDSN)
	if err != nil {
		return nil, fmt.Errorf("open translation model: %w", err)
	}

	lmProvider, err := lm.OpenSQLiteProvider(lmDSN)
	if err != nil {
		tmProvider.Close()
		return nil, fmt.Errorf("open language model: %w", err)
	}

	weights := decoder.Weights{
		TM: cfg.Weights.TM,
		PP: cfg.Weights.PP,
		WP: cfg.Weights.WP,
		LM: cfg.Weights.LM,
	}
	if weightsCSV != "" {
		raw, err := parseWeightsCSV(weightsCSV)
		if err != nil {
			tmProvider.Close()
			lmProvider.Close()
			return nil, err
		}
		weights = decoder.ResolveWeights(raw, sink)
	}

	lmScorer := lm.New(lmProvider, cfg.NMax, cfg.Lambda)

	d := decoder.New(
		tm.New(tmProvider, cfg.TMFloor),
		lmScorer,
		weights,
		decoder.WithMaxPhraseLen(cfg.MaxPhraseLen),
		decoder.WithMaxIters(cfg.MaxIters),
		decoder.WithSink(sink),
	)

	return &app{decoder: d, tmDB: tmProvider, lmDB: lmProvider}, nil
}

// parseWeightsCSV parses a comma-separated --weights override into a raw
// float slice for decoder.ResolveWeights, which applies spec.md §3's
// arity contract (exactly 4 entries, else uniform fallback).
func parseWeightsCSV(csv string) ([]float64, error) {
	fields := strings.Split(csv, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parse --weights %q: %w", csv, err)
		}
		out = append(out, v)
	}
	return out, nil
}
