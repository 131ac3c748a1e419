package lm

import (
	"github.com/hack-pad/hackpadfs"
	"github.com/kelindar/binary"
)

// Snapshot is the serializable form of a MemoryProvider's count table,
// loaded/saved through a hackpadfs.FS so the same code runs against a
// native OS filesystem, an in-memory test filesystem, or (in a WASM
// build) a browser-backed one — the same role hackpadfs plays in
// tm.Snapshot and pkg/vector/store.go's NewStore(fs hackpadfs.FS, path string).
type Snapshot struct {
	Counts map[string]int `binary:"counts"`
}

// ToSnapshot captures the current state of p.
func (p *MemoryProvider) ToSnapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap := Snapshot{Counts: make(map[string]int, len(p.counts))}
	for ngram, count := range p.counts {
		snap.Counts[ngram] = count
	}
	return snap
}

// LoadSnapshot replaces p's contents with snap's.
func (p *MemoryProvider) LoadSnapshot(snap Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.counts = make(map[string]int, len(snap.Counts))
	for ngram, count := range snap.Counts {
		p.counts[ngram] = count
	}
}

// SaveSnapshot binary-encodes p's count table (via kelindar/binary, the
// same codec tm.SaveSnapshot uses) and writes it to path on fs, using
// hackpadfs.WriteFullFile exactly as pkg/vector/store.go's Save does (a
// single short Write can otherwise silently truncate the file).
func SaveSnapshot(fs hackpadfs.FS, path string, p *MemoryProvider) error {
	data, err := binary.Marshal(p.ToSnapshot())
	if err != nil {
		return err
	}
	return hackpadfs.WriteFullFile(fs, path, data, 0644)
}

// LoadProvider reads a snapshot previously written by SaveSnapshot and
// returns a populated MemoryProvider, using hackpadfs.ReadFile exactly as
// pkg/vector/store.go's Load does.
func LoadProvider(fs hackpadfs.FS, path string) (*MemoryProvider, error) {
	data, err := hackpadfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	var snap Snapshot
	if err := binary.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	p := NewMemoryProvider()
	p.LoadSnapshot(snap)
	return p, nil
}
