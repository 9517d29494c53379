package foundation

import "sync"

// Name is an interned method/filter name. Interning lets call-chain code
// compare names by pointer and lets the call-chain cache use *Name as a
// map key without re-hashing the underlying string on every lookup.
type Name struct {
	Text string
}

// String implements fmt.Stringer.
func (n *Name) String() string {
	if n == nil {
		return ""
	}
	return n.Text
}

// Names is a per-Foundation interning table. Zero value is not usable;
// construct with NewNames.
type Names struct {
	mu    sync.Mutex
	table map[string]*Name
}

// NewNames returns an empty interning table.
func NewNames() *Names {
	return &Names{table: make(map[string]*Name)}
}

// Intern returns the canonical *Name for text, allocating one on first
// use. Safe for concurrent use, though the dispatch core itself is
// single-threaded (see object.Foundation's documentation).
func (n *Names) Intern(text string) *Name {
	n.mu.Lock()
	defer n.mu.Unlock()
	if existing, ok := n.table[text]; ok {
		return existing
	}
	name := &Name{Text: text}
	n.table[text] = name
	return name
}
