package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistry_Enabled(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
		flag     string
		expected bool
	}{
		{"known flag set to true", New(map[string]bool{FlagMouse: true}), FlagMouse, true},
		{"known flag set to false", New(map[string]bool{FlagMouse: false}), FlagMouse, false},
		{"unknown flag", New(map[string]bool{FlagMouse: true}), "unknown-flag", false},
		{"nil registry", nil, FlagMouse, false},
		{"nil flags map", New(nil), FlagMouse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.registry.Enabled(tt.flag))
		})
	}
}

func TestDefaults(t *testing.T) {
	r := New(Defaults())

	require.True(t, r.Enabled(FlagModalHotkeys))
	require.True(t, r.Enabled(FlagMouse))

	d := Defaults()
	d[FlagMouse] = false
	require.True(t, Defaults()[FlagMouse], "each call returns a fresh map")
}

func TestRegistry_CopiesInputAndOutput(t *testing.T) {
	original := map[string]bool{FlagMouse: true}
	r := New(original)

	original[FlagMouse] = false
	require.True(t, r.Enabled(FlagMouse), "later edits to the config map do not leak in")

	all := r.All()
	all[FlagMouse] = false
	all["new-flag"] = true
	require.True(t, r.Enabled(FlagMouse))
	require.False(t, r.Enabled("new-flag"))
	require.Empty(t, (*Registry)(nil).All())
}
