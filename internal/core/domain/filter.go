package domain

import "slices"

// FilteredSpec is a resolved environment projected onto a set of package names.
type FilteredSpec struct {
	Platform Platform
	Channels []string
	Specs    []string
	Names    []string
}

// Filter keeps the packages of env whose name is in names. The result is
// sorted by pinned spec string. Names absent from env are dropped silently.
func Filter(env *ResolvedEnvironment, names NameSet) FilteredSpec {
	out := FilteredSpec{
		Platform: env.Platform,
		Channels: slices.Clone(env.Channels),
		Specs:    []string{},
		Names:    []string{},
	}

	for _, pkg := range env.Packages {
		if names.Has(pkg.Name) {
			out.Specs = append(out.Specs, pkg.Spec())
			out.Names = append(out.Names, pkg.Name)
		}
	}

	slices.Sort(out.Specs)
	slices.Sort(out.Names)
	return out
}

// UserRequestedSpecs returns the requested names present in the filtered spec,
// sorted and deduplicated. Packages removed by platform selectors are dropped.
func UserRequestedSpecs(requested []string, filtered FilteredSpec) []string {
	present := NewNameSet(filtered.Specs)
	out := make([]string, 0, len(requested))
	for _, spec := range requested {
		name := NameFromSpec(spec)
		if present.Has(name) {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
