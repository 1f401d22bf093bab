package core

import (
	"runtime"

	vk "github.com/vulkan-go/vulkan"
)

// Instance extension names the negotiator may add on top of the
// platform-supplied surface extensions.
const (
	DebugReportExtensionName             = "VK_EXT_debug_report"
	GetPhysicalDeviceProps2ExtensionName = "VK_KHR_get_physical_device_properties2"
	PortabilityEnumerationExtensionName  = "VK_KHR_portability_enumeration"
)

// PortabilityVersion is the Vulkan SDK version that started requiring
// the portability extensions on macOS.
var PortabilityVersion = vk.MakeVersion(1, 3, 216)

// NewNegotiator returns a negotiator for the running platform and the
// default target API version.
func NewNegotiator(cfg ValidationConfiguration) Negotiator {
	return Negotiator{
		GOOS:       runtime.GOOS,
		APIVersion: vk.MakeVersion(1, 0, 0),
		Validation: cfg,
	}
}

// Negotiator decides which instance extensions and layers are requested.
// Negotiation is a pure computation over the platform and the validation
// configuration; for fixed inputs it always produces the same lists.
type Negotiator struct {
	GOOS       string
	APIVersion uint32
	Validation ValidationConfiguration
}

// Negotiate extends the platform surface extensions with the debug-report
// extension when validation is on, and with the portability extensions
// plus the portability-enumeration flag on darwin below the portability
// threshold. The layer list is non-empty only when validation is enabled.
func (n Negotiator) Negotiate(platformExtensions []string) InstanceConfiguration {
	extensions := make([]string, 0, len(platformExtensions)+3)
	extensions = append(extensions, platformExtensions...)

	var layers []string
	if n.Validation.Enabled {
		extensions = append(extensions, DebugReportExtensionName)
		layers = append(layers, n.Validation.Layer)
	}

	var portability bool
	if n.GOOS == "darwin" && n.APIVersion < PortabilityVersion {
		extensions = append(extensions,
			GetPhysicalDeviceProps2ExtensionName,
			PortabilityEnumerationExtensionName)
		portability = true
	}

	return InstanceConfiguration{
		Extensions:  extensions,
		Layers:      layers,
		Portability: portability,
		Validation:  n.Validation,
	}
}
