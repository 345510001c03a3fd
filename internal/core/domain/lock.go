package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// LockedPackage is a single package pinned by the resolver.
type LockedPackage struct {
	Name     string
	Version  string
	Build    string
	Platform Platform
	URL      string
	Channel  string
	MD5      string
	SHA256   string
	Category string
}

// Spec returns the pinned requirement string "name=version=build".
func (p LockedPackage) Spec() string {
	if p.Build == "" {
		return p.Name + "=" + p.Version
	}
	return p.Name + "=" + p.Version + "=" + p.Build
}

// ResolvedEnvironment is the fully pinned package set for one platform.
type ResolvedEnvironment struct {
	Name     string
	Platform Platform
	Channels []string
	Packages []LockedPackage
}

// NewResolvedEnvironment validates that no two packages share a name.
func NewResolvedEnvironment(
	name string,
	platform Platform,
	channels []string,
	packages []LockedPackage,
) (*ResolvedEnvironment, error) {
	seen := make(map[string]struct{}, len(packages))
	for _, pkg := range packages {
		if _, dup := seen[pkg.Name]; dup {
			err := zerr.With(ErrDuplicatePackage, "package", pkg.Name)
			return nil, zerr.With(err, "platform", platform.String())
		}
		seen[pkg.Name] = struct{}{}
	}

	return &ResolvedEnvironment{
		Name:     name,
		Platform: platform,
		Channels: slices.Clone(channels),
		Packages: slices.Clone(packages),
	}, nil
}

// Names returns the package names of the environment.
func (e *ResolvedEnvironment) Names() NameSet {
	set := make(NameSet, len(e.Packages))
	for _, pkg := range e.Packages {
		set[pkg.Name] = struct{}{}
	}
	return set
}

// Lookup returns the locked package with the given name.
func (e *ResolvedEnvironment) Lookup(name string) (LockedPackage, bool) {
	for _, pkg := range e.Packages {
		if pkg.Name == name {
			return pkg, true
		}
	}
	return LockedPackage{}, false
}

// Specs returns every pinned spec of the environment, sorted.
func (e *ResolvedEnvironment) Specs() []string {
	specs := make([]string, 0, len(e.Packages))
	for _, pkg := range e.Packages {
		specs = append(specs, pkg.Spec())
	}
	slices.Sort(specs)
	return specs
}

// LockMetadata is the header carried by a rendered lock file.
type LockMetadata struct {
	Name         string
	Version      string
	Platform     Platform
	Channels     []string
	Dependencies []string
}

// LockFile is the content of a rendered, line-oriented lock file.
type LockFile struct {
	Metadata LockMetadata
	Specs    []string
}
