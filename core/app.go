package core

import (
	"fmt"
	"unsafe"

	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/miru/device"
)

// NewApplication runs the bootstrap sequence over the given backend:
// instance, messenger, device selection, logical device, surface. Every
// step is fatal on failure; whatever was already created is released
// before the error is returned, in the same order a full teardown uses.
func NewApplication(backend Backend, cfg Configuration, window SurfaceSource) (*Application, error) {
	instance, err := backend.NewInstance(cfg.Instance)
	if err != nil {
		return nil, err
	}

	messenger, err := backend.NewMessenger(instance, cfg.Instance.Validation)
	if err != nil {
		instance.Destroy()
		return nil, err
	}

	candidate, err := backend.SelectDevice(instance)
	if err != nil {
		messenger.Destroy()
		instance.Destroy()
		return nil, err
	}
	log.WithField("device", candidate.Device.Name).Info("physical device selected")

	logical, err := backend.NewDevice(candidate)
	if err != nil {
		messenger.Destroy()
		instance.Destroy()
		return nil, err
	}

	surface, err := backend.BindSurface(instance, window)
	if err != nil {
		messenger.Destroy()
		logical.Destroy()
		instance.Destroy()
		return nil, err
	}

	return &Application{
		instance:  instance,
		messenger: messenger,
		candidate: candidate,
		device:    logical,
		surface:   surface,
	}, nil
}

// Application owns every handle the bootstrap produced. It has exactly
// one owner and is never accessed concurrently.
type Application struct {
	instance  Instance
	messenger Messenger
	candidate device.Candidate
	device    device.Logical
	surface   Surface

	destroyed bool
}

// Instance returns the owned instance
func (a *Application) Instance() Instance {
	return a.instance
}

// Messenger returns the diagnostic channel
func (a *Application) Messenger() Messenger {
	return a.messenger
}

// Device returns the owned logical device
func (a *Application) Device() device.Logical {
	return a.device
}

// DeviceInfo returns the selected physical device description
func (a *Application) DeviceInfo() device.Info {
	return a.candidate.Device
}

// Queue returns the graphics submission queue. The queue has no
// independent lifetime, it is invalidated with the device.
func (a *Application) Queue() interface{} {
	return a.device.Queue()
}

// Surface returns the owned window surface
func (a *Application) Surface() Surface {
	return a.surface
}

// Destroy releases everything in strict reverse acquisition order:
// messenger, logical device, surface, instance. It may be called
// exactly once; a second call panics rather than touching freed
// handles.
func (a *Application) Destroy() {
	if a.destroyed {
		panic("core: Application.Destroy called twice")
	}
	a.destroyed = true

	a.messenger.Destroy()
	a.device.Destroy()
	a.surface.Destroy()
	a.instance.Destroy()
}

// VulkanBackend creates the real API objects.
type VulkanBackend struct {
	// AppInfo overrides DefaultVulkanApplicationInfo when set.
	AppInfo *vk.ApplicationInfo

	// ProcAddr is the loader entry point, usually supplied by SDL.
	// When nil the default loader lookup is used.
	ProcAddr unsafe.Pointer
}

// NewInstance implements interface
func (b VulkanBackend) NewInstance(cfg InstanceConfiguration) (Instance, error) {
	appInfo := b.AppInfo
	if appInfo == nil {
		appInfo = DefaultVulkanApplicationInfo
	}
	return NewVulkanInstance(appInfo, b.ProcAddr, cfg)
}

// NewMessenger implements interface
func (b VulkanBackend) NewMessenger(instance Instance, cfg ValidationConfiguration) (Messenger, error) {
	return NewMessenger(instance, cfg)
}

// SelectDevice implements interface
func (b VulkanBackend) SelectDevice(instance Instance) (device.Candidate, error) {
	inner, ok := instance.Inner().(vk.Instance)
	if !ok {
		return device.Candidate{}, &InitializationError{Stage: "device", Err: fmt.Errorf("instance does not hold a vulkan handle")}
	}
	return device.Select(device.NewVulkanSource(inner))
}

// NewDevice implements interface
func (b VulkanBackend) NewDevice(candidate device.Candidate) (device.Logical, error) {
	logical, err := device.NewVulkanDevice(candidate)
	if err != nil {
		return nil, &InitializationError{Stage: "device", Err: err}
	}
	return logical, nil
}

// BindSurface implements interface
func (b VulkanBackend) BindSurface(instance Instance, source SurfaceSource) (Surface, error) {
	return BindSurface(instance, source)
}
