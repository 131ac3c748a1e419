package tm

import (
	"sort"
	"sync"

	trie "github.com/derekparker/trie/v3"
)

// phraseEntry is the value stored at each source-phrase key of the
// trie: its corpus count, and the joint counts of every target phrase
// it has ever been paired with.
type phraseEntry struct {
	srcCount int
	joint    map[string]int
}

// MemoryProvider is an in-memory reference Provider, used by tests and by
// snapshot persistence (the CLI always opens a SQLiteProvider). Source phrases are
// keys of a derekparker/trie/v3 trie; each node's metadata holds the
// phrase's counts — the same "phrase table as dictionary lookup" shape as
// pkg/dafsa/dictionary.go's Aho-Corasick-backed dictionary, built over a
// trie instead since phrase lookups here are always exact (no
// substring scanning is needed).
type MemoryProvider struct {
	mu   sync.RWMutex
	tree *trie.Trie
	// keys tracks every source phrase added to tree, in insertion order.
	// derekparker/trie/v3 is used for its Find/Add dictionary-lookup
	// shape, not for enumeration, so Snapshot/ToSnapshot walk this slice
	// instead of the trie itself.
	keys []string
}

// NewMemoryProvider creates an empty MemoryProvider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{tree: trie.New()}
}

// Observe records one occurrence of (srcPhrase -> trgPhrase), incrementing
// both the source phrase's corpus count and its joint count with
// trgPhrase. This is the minimal write path a trainer would drive; full
// estimation is out of scope (spec.md §1).
func (p *MemoryProvider) Observe(srcPhrase, trgPhrase string, count int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	node, found := p.tree.Find(srcPhrase)
	var entry *phraseEntry
	if found {
		entry = node.Meta().(*phraseEntry)
	} else {
		entry = &phraseEntry{joint: make(map[string]int)}
		p.tree.Add(srcPhrase, entry)
		p.keys = append(p.keys, srcPhrase)
	}
	entry.srcCount += count
	entry.joint[trgPhrase] += count
}

// Targets implements Provider.
func (p *MemoryProvider) Targets(srcPhrase string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	node, found := p.tree.Find(srcPhrase)
	if !found {
		return nil
	}
	entry := node.Meta().(*phraseEntry)
	out := make([]string, 0, len(entry.joint))
	for trg := range entry.joint {
		out = append(out, trg)
	}
	// Deterministic order (spec.md §5) even though spec.md §4.2 calls
	// Targets "unordered" — a stable order keeps the decoder's
	// insertion-order tiebreak reproducible across runs.
	sort.Strings(out)
	return out
}

// SrcCount implements Provider.
func (p *MemoryProvider) SrcCount(srcPhrase string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	node, found := p.tree.Find(srcPhrase)
	if !found {
		return 0
	}
	return node.Meta().(*phraseEntry).srcCount
}

// JointCount implements Provider.
func (p *MemoryProvider) JointCount(srcPhrase, trgPhrase string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	node, found := p.tree.Find(srcPhrase)
	if !found {
		return 0
	}
	return node.Meta().(*phraseEntry).joint[trgPhrase]
}

var _ Provider = (*MemoryProvider)(nil)
