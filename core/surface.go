package core

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// BindSurface asks the window for a native surface bound to the instance
// and wraps it so teardown can destroy it explicitly.
func BindSurface(instance Instance, source SurfaceSource) (Surface, error) {
	inner, ok := instance.Inner().(vk.Instance)
	if !ok {
		return nil, &InitializationError{Stage: "surface", Err: fmt.Errorf("instance does not hold a vulkan handle")}
	}

	ptr, err := source.VulkanCreateSurface(instance.Inner())
	if err != nil {
		return nil, &InitializationError{Stage: "surface", Err: fmt.Errorf("VulkanCreateSurface(): %w", err)}
	}

	return &VulkanSurface{
		instance: inner,
		surface:  vk.SurfaceFromPointer(uintptr(ptr)),
	}, nil
}

// VulkanSurface is an owned vk.Surface. The surface depends on the
// instance only, never on the logical device.
type VulkanSurface struct {
	instance vk.Instance
	surface  vk.Surface
}

// Inner implements interface
func (s *VulkanSurface) Inner() interface{} {
	return s.surface
}

// Destroy implements interface
func (s *VulkanSurface) Destroy() {
	vk.DestroySurface(s.instance, s.surface, nil)
}
