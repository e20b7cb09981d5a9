package arena

import (
	"fmt"

	"github.com/banksean/forge/internal/strjoin"
)

// JoinPool owns the fixed-maximum-length buffers produced by Join calls. An
// empty input list yields an unowned empty string with no pool entry, same
// as the original cf_join().
type JoinPool struct {
	entries []string
	max     int
	maxLen  int
}

// NewJoinPool allocates a join pool bounded at max entries, each bounded at
// maxLen bytes.
func NewJoinPool(max, maxLen int) *JoinPool {
	return &JoinPool{max: max, maxLen: maxLen}
}

// Join concatenates strs with sep via strjoin.Join and, unless the input was
// empty, pushes the result onto the pool.
func (p *JoinPool) Join(strs []string, sep string) (string, error) {
	if len(strs) < 1 {
		return "", nil
	}
	if len(p.entries) >= p.max {
		return "", fmt.Errorf("maximum joined strings of %d was reached", p.max)
	}

	joined := strjoin.Join(strs, sep, p.maxLen)
	p.entries = append(p.entries, joined)
	return joined, nil
}

// Checkpoint snapshots the current top of the stack.
func (p *JoinPool) Checkpoint() int { return len(p.entries) }

// ReleaseTo pops entries down to checkpoint.
func (p *JoinPool) ReleaseTo(checkpoint int) {
	for len(p.entries) > checkpoint {
		last := len(p.entries) - 1
		p.entries[last] = ""
		p.entries = p.entries[:last]
	}
}

// Len reports the current stack depth.
func (p *JoinPool) Len() int { return len(p.entries) }
