package build

import (
	"log/slog"

	"github.com/google/go-cmp/cmp"
)

// Phase is the engine's registration/execution state machine. Phase gates
// registration: targets and configs may only be added while the engine is
// in PhaseRegister.
type Phase int

const (
	PhaseRegister Phase = iota
	// PhasePlan is a reserved value the original source carries but never
	// uses (spec Design Notes, open question (a)). It is kept here for
	// fidelity and is otherwise unreachable from the driver.
	PhasePlan
	PhaseExecute
)

// registry holds the process-wide (here: engine-instance-wide) tables of
// registered targets and configs.
type registry struct {
	targets []*Target
	configs []*Config
	limits  Limits
	phase   Phase
}

func newRegistry(limits Limits) *registry {
	return &registry{limits: limits, phase: PhaseRegister}
}

// RegisterTarget appends a target to the registry. It is fatal if the
// engine is not in PhaseRegister, the name exceeds MaxNameLength, or the
// target table is already at MaxTargets.
func (r *registry) RegisterTarget(name string, body TargetFunc, attrs ...Attribute) error {
	if r.phase != PhaseRegister {
		return fatalf(ExitInvalidPhase, "cannot register target %q outside the register phase", name)
	}
	if len(name) > r.limits.MaxNameLength {
		return fatalf(ExitNameTooLong, "target name %q exceeds max length of %d", name, r.limits.MaxNameLength)
	}
	if len(r.targets) >= r.limits.MaxTargets {
		return fatalf(ExitMaxTargets, "maximum targets of %d was reached", r.limits.MaxTargets)
	}

	owned := make([]Attribute, len(attrs))
	copy(owned, attrs)

	if existing := r.findTarget(name); existing != nil {
		slog.Warn("build: re-registering target with an existing name, shadowing the previous registration",
			"target", name,
			"attributesChanged", !cmp.Equal(existing.Attributes, owned),
		)
	}

	r.targets = append(r.targets, &Target{
		Name:       name,
		Body:       body,
		Attributes: owned,
		status:     Unvisited,
	})
	return nil
}

// RegisterConfig appends a config to the registry, symmetric to
// RegisterTarget but with no attributes.
func (r *registry) RegisterConfig(name string, body ConfigFunc) error {
	if r.phase != PhaseRegister {
		return fatalf(ExitInvalidPhase, "cannot register config %q outside the register phase", name)
	}
	if len(name) > r.limits.MaxNameLength {
		return fatalf(ExitNameTooLong, "config name %q exceeds max length of %d", name, r.limits.MaxNameLength)
	}
	if len(r.configs) >= r.limits.MaxConfigs {
		return fatalf(ExitMaxConfigs, "maximum configs of %d was reached", r.limits.MaxConfigs)
	}

	if r.findConfig(name) != nil {
		slog.Warn("build: re-registering config with an existing name, shadowing the previous registration", "config", name)
	}

	r.configs = append(r.configs, &Config{Name: name, Body: body})
	return nil
}

// findTarget scans from the most recently registered entry backwards, so a
// later registration shadows an earlier one with the same name. Returns nil
// if no target named name exists.
func (r *registry) findTarget(name string) *Target {
	for i := len(r.targets) - 1; i >= 0; i-- {
		if r.targets[i].Name == name {
			return r.targets[i]
		}
	}
	return nil
}

// findConfig is the config-table equivalent of findTarget.
func (r *registry) findConfig(name string) *Config {
	for i := len(r.configs) - 1; i >= 0; i-- {
		if r.configs[i].Name == name {
			return r.configs[i]
		}
	}
	return nil
}

// enterExecutePhase flips the phase to Execute. The engine's driver entry
// point calls it on every Run with at least one target name; calls after the
// first are no-ops.
func (r *registry) enterExecutePhase() {
	if r.phase == PhaseRegister {
		r.phase = PhaseExecute
	}
}

