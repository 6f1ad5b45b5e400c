package gui

import "strconv"

// Namer hands out names of the form Kind_N, counting per kind.
// Each Namer counts independently.
type Namer struct {
	counts map[string]int
}

// NewNamer creates a Namer with all counters at zero.
func NewNamer() *Namer {
	return &Namer{counts: make(map[string]int)}
}

// Next returns the next name for kind: "Button_1", "Button_2", ...
func (n *Namer) Next(kind string) string {
	if n.counts == nil {
		n.counts = make(map[string]int)
	}
	n.counts[kind]++
	return kind + "_" + strconv.Itoa(n.counts[kind])
}

// Count returns how many names have been issued for kind.
func (n *Namer) Count(kind string) int {
	return n.counts[kind]
}

// Reset sets every counter back to zero.
func (n *Namer) Reset() {
	clear(n.counts)
}
