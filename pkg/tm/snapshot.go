package tm

import (
	trie "github.com/derekparker/trie/v3"
	"github.com/hack-pad/hackpadfs"
	"github.com/kelindar/binary"
)

// Snapshot is the serializable form of a MemoryProvider's count table,
// loaded/saved through a hackpadfs.FS so the same code runs against a
// native OS filesystem, an in-memory test filesystem, or (in a WASM
// build) a browser-backed one — the exact role hackpadfs plays in
// pkg/vector/store.go's NewStore(fs hackpadfs.FS, path string).
type Snapshot struct {
	SrcCounts map[string]int            `binary:"srcCounts"`
	Joint     map[string]map[string]int `binary:"joint"`
}

// ToSnapshot captures the current state of p.
func (p *MemoryProvider) ToSnapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	snap := Snapshot{
		SrcCounts: make(map[string]int),
		Joint:     make(map[string]map[string]int),
	}
	for _, key := range p.keys {
		node, found := p.tree.Find(key)
		if !found {
			continue
		}
		entry := node.Meta().(*phraseEntry)
		snap.SrcCounts[key] = entry.srcCount
		joint := make(map[string]int, len(entry.joint))
		for trg, c := range entry.joint {
			joint[trg] = c
		}
		snap.Joint[key] = joint
	}
	return snap
}

// LoadSnapshot replaces p's contents with snap's.
func (p *MemoryProvider) LoadSnapshot(snap Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.tree = trie.New()
	p.keys = make([]string, 0, len(snap.SrcCounts))
	for src, count := range snap.SrcCounts {
		entry := &phraseEntry{srcCount: count, joint: make(map[string]int)}
		for trg, c := range snap.Joint[src] {
			entry.joint[trg] = c
		}
		p.tree.Add(src, entry)
		p.keys = append(p.keys, src)
	}
}

// SaveSnapshot binary-encodes p's count table (via kelindar/binary, the
// same codec the teacher's dependency graph already carries through
// fogfish/hnsw) and writes it to path on fs, using hackpadfs.WriteFullFile
// exactly as pkg/vector/store.go's Save does (a single short Write can
// otherwise silently truncate the file).
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
