package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPreset(t *testing.T) {
	assert.Equal(t, "default", GetPreset("").Preset)
	assert.Equal(t, "default", GetPreset("default").Preset)
	assert.Equal(t, "monochrome", GetPreset("monochrome").Preset)
	// Unknown presets fall back to default
	assert.Equal(t, "default", GetPreset("neon-dreams").Preset)
}

func TestApplyDefaultsFillsMissing(t *testing.T) {
	scheme := ColorScheme{Accent: "#FF00FF"}
	scheme.ApplyDefaults()

	// Custom value preserved
	assert.Equal(t, "#FF00FF", scheme.Accent)
	// Missing values filled from the default preset
	assert.Equal(t, Default().Subtle, scheme.Subtle)
	assert.Equal(t, Default().LaneBorder, scheme.LaneBorder)
}

func TestApplyDefaultsUsesPresetBase(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()

	assert.Equal(t, Monochrome().Accent, scheme.Accent)
	assert.Equal(t, Monochrome().LaneBorder, scheme.LaneBorder)
}

func TestMergeFrom(t *testing.T) {
	base := *Default()
	base.MergeFrom(ColorScheme{Accent: "#101010"})

	assert.Equal(t, "#101010", base.Accent)
	// Untouched values survive the merge
	assert.Equal(t, Default().Normal, base.Normal)
}
