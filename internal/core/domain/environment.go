package domain

import (
	"slices"
	"strings"
)

// EnvironmentFile is a parsed declarative environment file.
type EnvironmentFile struct {
	// Path is the file the environment was read from.
	Path string

	// Name is the environment (and distribution) name.
	Name string

	// Version is an optional version carried by rendered environment files.
	Version string

	// Channels lists the conda channels in priority order.
	Channels []string

	// Platforms lists the target platforms. It may be empty for auxiliary
	// environments that inherit the platforms of a primary environment.
	Platforms []Platform

	// Dependencies holds the free-form requirement strings.
	Dependencies []string

	// Variables are environment variables recorded in rendered environment files.
	Variables map[string]string
}

// EnvironmentSpec is an environment narrowed to a single target platform.
type EnvironmentSpec struct {
	Name         string
	Channels     []string
	Platform     Platform
	Dependencies []string
}

// Specs returns one EnvironmentSpec per platform of the file.
func (f *EnvironmentFile) Specs() []EnvironmentSpec {
	specs := make([]EnvironmentSpec, 0, len(f.Platforms))
	for _, p := range f.Platforms {
		specs = append(specs, f.SpecFor(p))
	}
	return specs
}

// SpecFor narrows the file to the given platform.
func (f *EnvironmentFile) SpecFor(platform Platform) EnvironmentSpec {
	return EnvironmentSpec{
		Name:         f.Name,
		Channels:     slices.Clone(f.Channels),
		Platform:     platform,
		Dependencies: slices.Clone(f.Dependencies),
	}
}

// PackageNames returns the bare names of all requirements in declaration order.
func (f *EnvironmentFile) PackageNames() []string {
	names := make([]string, 0, len(f.Dependencies))
	for _, dep := range f.Dependencies {
		names = append(names, NameFromSpec(dep))
	}
	return names
}

// Merge combines the spec with extra environments targeting the same platform.
// Channels keep first-seen order; requirement strings are concatenated as is.
func (s EnvironmentSpec) Merge(others ...EnvironmentSpec) EnvironmentSpec {
	merged := EnvironmentSpec{
		Name:         s.Name,
		Channels:     slices.Clone(s.Channels),
		Platform:     s.Platform,
		Dependencies: slices.Clone(s.Dependencies),
	}
	for _, o := range others {
		for _, ch := range o.Channels {
			if !slices.Contains(merged.Channels, ch) {
				merged.Channels = append(merged.Channels, ch)
			}
		}
		merged.Dependencies = append(merged.Dependencies, o.Dependencies...)
	}
	return merged
}

// NameFromSpec returns the bare package name of a requirement string such as
// "conda-forge::numpy=1.24=py311_0" or "numpy >=1.24".
func NameFromSpec(spec string) string {
	name := strings.TrimSpace(spec)
	if i := strings.IndexFunc(name, isSpace); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '='); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.IndexAny(name, "<>!~"); i >= 0 {
		name = name[:i]
	}
	return name
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// NameSet is a set of bare package names.
type NameSet map[string]struct{}

// NewNameSet builds a set from one or more lists of requirement strings.
func NewNameSet(specLists ...[]string) NameSet {
	set := make(NameSet)
	for _, specs := range specLists {
		for _, spec := range specs {
			if name := NameFromSpec(spec); name != "" {
				set[name] = struct{}{}
			}
		}
	}
	return set
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the names in lexical order.
func (s NameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
