package arena

import (
	"fmt"

	"github.com/banksean/forge/internal/pathmap"
)

// MapPool owns the mapped-name arrays produced by MapNames calls. Each call
// is recorded as a single entry so every element string it produced is
// logically freed together when its checkpoint is released.
type MapPool struct {
	entries [][]string
	max     int
	maxLen  int
}

// NewMapPool allocates a maps pool bounded at max entries, each element
// string bounded at maxLen bytes.
func NewMapPool(max, maxLen int) *MapPool {
	return &MapPool{max: max, maxLen: maxLen}
}

// MapNames applies rewrites to each of inputs and pushes the resulting array
// as one pool entry.
func (p *MapPool) MapNames(inputs []string, rewrites ...pathmap.Rewrite) ([]string, error) {
	if len(p.entries) >= p.max {
		return nil, fmt.Errorf("maximum mapped-name arrays of %d was reached", p.max)
	}
	mapped := pathmap.Map(inputs, p.maxLen, rewrites...)
	p.entries = append(p.entries, mapped)
	return mapped, nil
}

// Checkpoint snapshots the current top of the stack.
func (p *MapPool) Checkpoint() int { return len(p.entries) }

// ReleaseTo pops entries down to checkpoint.
func (p *MapPool) ReleaseTo(checkpoint int) {
	for len(p.entries) > checkpoint {
		last := len(p.entries) - 1
		p.entries[last] = nil
		p.entries = p.entries[:last]
	}
}

// Len reports the current stack depth.
func (p *MapPool) Len() int { return len(p.entries) }
