package core

import (
	"fmt"
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// DefaultVulkanApplicationInfo application info describes a Vulkan application
var DefaultVulkanApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "Miru3D\x00",
	PEngineName:        "Miru3D\x00",
}

// portabilityEnumerationBit mirrors VK_INSTANCE_CREATE_ENUMERATE_PORTABILITY_BIT_KHR,
// which predates the binding's header generation.
const portabilityEnumerationBit vk.InstanceCreateFlags = 0x00000001

// NewVulkanInstance creates a Vulkan instance from a negotiated
// configuration. When validation is enabled the requested layer must be
// supported by the runtime, and the debug-report create info is chained
// onto the instance create info so diagnostics cover instance creation
// itself.
func NewVulkanInstance(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer, cfg InstanceConfiguration) (Instance, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, &InitializationError{Stage: "instance", Err: fmt.Errorf("vk.SetDefaultGetInstanceProcAddr(): %w", err)}
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, &InitializationError{Stage: "instance", Err: fmt.Errorf("vk.Init(): %w", err)}
	}

	if cfg.Validation.Enabled {
		supported, err := SupportedLayers()
		if err != nil {
			return nil, &InitializationError{Stage: "instance", Err: err}
		}
		if !containsString(supported, cfg.Validation.Layer) {
			return nil, &ConfigurationError{Layer: cfg.Validation.Layer}
		}
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}
	if cfg.Portability {
		instanceInfo.Flags = portabilityEnumerationBit
	}
	if cfg.Validation.Enabled {
		instanceInfo.PNext = unsafe.Pointer(debugReportCreateInfo().Ref())
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, &InitializationError{Stage: "instance", Err: fmt.Errorf("vk.CreateInstance(): %w", err)}
	}
	vk.InitInstance(instance)

	return &VulkanInstance{
		configuration: cfg,
		instance:      instance,
	}, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	configuration InstanceConfiguration

	instance vk.Instance
}

// Extensions implements interface
func (v *VulkanInstance) Extensions() []string {
	return v.configuration.Extensions
}

// Inner implements interface
func (v *VulkanInstance) Inner() interface{} {
	return v.instance
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	vk.DestroyInstance(v.instance, nil)
}

// SupportedLayers enumerates the layer names the runtime exposes.
func SupportedLayers() ([]string, error) {
	var layerCount uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %w", err)
	}
	properties := make([]vk.LayerProperties, layerCount)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, properties)); err != nil {
		return nil, fmt.Errorf("vk.EnumerateInstanceLayerProperties(): %w", err)
	}

	layers := make([]string, 0, layerCount)
	for _, prop := range properties {
		prop.Deref()
		layers = append(layers, vk.ToString(prop.LayerName[:]))
	}
	return layers, nil
}
