package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devblok/miru/core"
)

var sdlExtensions = []string{"VK_KHR_surface", "VK_KHR_xlib_surface"}

func TestNegotiateDeterministic(t *testing.T) {
	negotiator := core.Negotiator{
		GOOS:       "linux",
		APIVersion: 1 << 22,
		Validation: core.ValidationConfiguration{Enabled: true, Layer: core.DefaultValidationLayer},
	}

	first := negotiator.Negotiate(sdlExtensions)
	second := negotiator.Negotiate(sdlExtensions)
	assert.Equal(t, first, second)
}

func TestNegotiateDoesNotMutateInput(t *testing.T) {
	platform := []string{"VK_KHR_surface", "VK_KHR_wayland_surface"}
	negotiator := core.Negotiator{
		GOOS:       "darwin",
		Validation: core.ValidationConfiguration{Enabled: true, Layer: core.DefaultValidationLayer},
	}

	cfg := negotiator.Negotiate(platform)
	assert.Equal(t, []string{"VK_KHR_surface", "VK_KHR_wayland_surface"}, platform)
	assert.Equal(t, platform, cfg.Extensions[:len(platform)])
}

func TestNegotiateValidationGating(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		negotiator := core.Negotiator{
			GOOS:       "linux",
			Validation: core.ValidationConfiguration{Enabled: true, Layer: core.DefaultValidationLayer},
		}
		cfg := negotiator.Negotiate(sdlExtensions)

		assert.Contains(t, cfg.Extensions, core.DebugReportExtensionName)
		require.Len(t, cfg.Layers, 1)
		assert.Equal(t, core.DefaultValidationLayer, cfg.Layers[0])
		assert.True(t, cfg.Validation.Enabled)
	})

	t.Run("disabled", func(t *testing.T) {
		negotiator := core.Negotiator{GOOS: "linux"}
		cfg := negotiator.Negotiate(sdlExtensions)

		assert.NotContains(t, cfg.Extensions, core.DebugReportExtensionName)
		assert.Empty(t, cfg.Layers)
	})
}

func TestNegotiatePortability(t *testing.T) {
	t.Run("darwin below threshold", func(t *testing.T) {
		negotiator := core.Negotiator{GOOS: "darwin", APIVersion: core.PortabilityVersion - 1}
		cfg := negotiator.Negotiate(sdlExtensions)

		assert.True(t, cfg.Portability)
		assert.Contains(t, cfg.Extensions, core.PortabilityEnumerationExtensionName)
		assert.Contains(t, cfg.Extensions, core.GetPhysicalDeviceProps2ExtensionName)
	})

	t.Run("darwin at threshold", func(t *testing.T) {
		negotiator := core.Negotiator{GOOS: "darwin", APIVersion: core.PortabilityVersion}
		cfg := negotiator.Negotiate(sdlExtensions)

		assert.False(t, cfg.Portability)
		assert.NotContains(t, cfg.Extensions, core.PortabilityEnumerationExtensionName)
	})

	t.Run("linux", func(t *testing.T) {
		negotiator := core.Negotiator{GOOS: "linux", APIVersion: core.PortabilityVersion - 1}
		cfg := negotiator.Negotiate(sdlExtensions)

		assert.False(t, cfg.Portability)
		assert.NotContains(t, cfg.Extensions, core.PortabilityEnumerationExtensionName)
	})
}
