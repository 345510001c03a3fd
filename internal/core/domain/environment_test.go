package domain_test

import (
	"testing"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestNameFromSpec(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"numpy", "numpy"},
		{"conda-forge::numpy=1.2=0", "numpy"},
		{"numpy>=1.2", "numpy"},
		{"numpy 1.24.*", "numpy"},
		{"numpy =1.24", "numpy"},
		{"ryanvolz/label/dev::gnuradio=3.10", "gnuradio"},
		{"a::b::c=1", "c"},
		{"python<3.12", "python"},
		{"libuhd!=4.0", "libuhd"},
		{"  scipy  ", "scipy"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NameFromSpec(tt.spec))
		})
	}
}

func TestNewNameSet(t *testing.T) {
	set := domain.NewNameSet(
		[]string{"numpy>=1.2", "conda-forge::scipy", "numpy=1.24"},
		[]string{"mamba", ""},
	)

	assert.Equal(t, []string{"mamba", "numpy", "scipy"}, set.Sorted())
	assert.True(t, set.Has("numpy"))
	assert.False(t, set.Has("numpy>=1.2"))
}

func TestEnvironmentFile_Specs(t *testing.T) {
	f := &domain.EnvironmentFile{
		Name:         "demo",
		Channels:     []string{"conda-forge"},
		Platforms:    []domain.Platform{"linux-64", "win-64"},
		Dependencies: []string{"numpy", "numpy=1.24"},
	}

	specs := f.Specs()
	if assert.Len(t, specs, 2) {
		assert.Equal(t, domain.Platform("linux-64"), specs[0].Platform)
		assert.Equal(t, domain.Platform("win-64"), specs[1].Platform)
		// Duplicate requirements are left for the resolver to reconcile.
		assert.Equal(t, []string{"numpy", "numpy=1.24"}, specs[1].Dependencies)
	}

	specs[0].Channels[0] = "mutated"
	assert.Equal(t, "conda-forge", f.Channels[0])
}

func TestEnvironmentSpec_Merge(t *testing.T) {
	main := domain.EnvironmentSpec{
		Name:         "demo",
		Channels:     []string{"conda-forge", "ryanvolz"},
		Platform:     "osx-64",
		Dependencies: []string{"numpy"},
	}
	extra := domain.EnvironmentSpec{
		Name:         "demo_installer",
		Channels:     []string{"conda-forge", "defaults"},
		Platform:     "osx-64",
		Dependencies: []string{"mamba"},
	}

	merged := main.Merge(extra)

	assert.Equal(t, "demo", merged.Name)
	assert.Equal(t, []string{"conda-forge", "ryanvolz", "defaults"}, merged.Channels)
	assert.Equal(t, []string{"numpy", "mamba"}, merged.Dependencies)
	assert.Equal(t, []string{"numpy"}, main.Dependencies)
}
