package arena

import (
	"fmt"
	"os"
)

// EnvEntry captures the state of one environment variable before it was
// overridden, so it can be restored (or unset) when its checkpoint is
// released.
type EnvEntry struct {
	Name     string
	Previous string
	WasSet   bool
}

// EnvPool owns the environment-restore records pushed by SetEnv calls made
// inside a target or config body. Restoration happens in LIFO order so a
// variable overridden twice in the same scope unwinds correctly.
type EnvPool struct {
	entries []EnvEntry
	max     int
}

// NewEnvPool allocates an env pool bounded at max entries.
func NewEnvPool(max int) *EnvPool {
	return &EnvPool{max: max}
}

// SetEnv overrides name to value, recording its previous state for restore.
func (p *EnvPool) SetEnv(name, value string) error {
	if len(p.entries) >= p.max {
		return fmt.Errorf("maximum environment variables of %d was reached", p.max)
	}

	prev, wasSet := os.LookupEnv(name)
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("setenv(%q): %w", name, err)
	}

	p.entries = append(p.entries, EnvEntry{Name: name, Previous: prev, WasSet: wasSet})
	return nil
}

// GetEnv reads the current value of name, mirroring CF_ENV's getenv() call.
func (p *EnvPool) GetEnv(name string) string {
	v, _ := os.LookupEnv(name)
	return v
}

// Checkpoint snapshots the current top of the stack.
func (p *EnvPool) Checkpoint() int { return len(p.entries) }

// ReleaseTo restores every environment variable touched since checkpoint, in
// reverse order, then truncates the stack.
func (p *EnvPool) ReleaseTo(checkpoint int) error {
	for len(p.entries) > checkpoint {
		last := len(p.entries) - 1
		entry := p.entries[last]
		p.entries[last] = EnvEntry{}
		p.entries = p.entries[:last]

		var err error
		if entry.WasSet {
			err = os.Setenv(entry.Name, entry.Previous)
		} else {
			err = os.Unsetenv(entry.Name)
		}
		if err != nil {
			return fmt.Errorf("restoring env %q: %w", entry.Name, err)
		}
	}
	return nil
}

// Len reports the current stack depth.
func (p *EnvPool) Len() int { return len(p.entries) }
