package build

// Limits bounds the capacity of every scoped pool and the registry. The
// defaults match the original fixed-size C arrays one for one; unlike that
// source, these are fields on an engine-owned struct rather than compile
// time constants, so a host program can resize them (spec Design Notes,
// open question (c)) without touching engine semantics.
type Limits struct {
	MaxTargets         int
	MaxConfigs         int
	MaxGlobs           int
	MaxThreads         int
	MaxEnvs            int
	MaxJoinStrings     int
	MaxJoinStringLen   int
	MaxMaps            int
	MaxNameLength      int
	MaxMappedNameLen   int
	MaxCommandLength   int
}

// DefaultLimits returns the spec's stock capacity values.
func DefaultLimits() Limits {
	return Limits{
		MaxTargets:       64,
		MaxConfigs:       64,
		MaxGlobs:         64,
		MaxThreads:       16,
		MaxEnvs:          256,
		MaxJoinStrings:   256,
		MaxJoinStringLen: 8192,
		MaxMaps:          64,
		MaxNameLength:    127,
		MaxMappedNameLen: 511,
		MaxCommandLength: 1024,
	}
}
