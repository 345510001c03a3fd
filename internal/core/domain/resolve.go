package domain

// ResolveRequest asks the resolver to pin one environment for a set of platforms.
type ResolveRequest struct {
	// Specs holds one entry per target platform. The entries share name,
	// channels and requirements and differ only in Platform.
	Specs []EnvironmentSpec

	// WorkDir receives the resolver's intermediate files.
	WorkDir string

	// LockfilePath is where the resolver's own lock file is written.
	LockfilePath string

	// CondaExe optionally points at the conda, mamba or micromamba executable.
	CondaExe string
}

// Platforms returns the target platforms in request order.
func (r ResolveRequest) Platforms() []Platform {
	out := make([]Platform, 0, len(r.Specs))
	for _, s := range r.Specs {
		out = append(out, s.Platform)
	}
	return out
}
