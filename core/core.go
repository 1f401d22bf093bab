package core

import (
	"unsafe"

	"github.com/devblok/miru/device"
)

// Instance describes a created API instance.
// It owns the underlying handle and must outlive every
// object created from it.
type Instance interface {
	// Extensions returns the instance extensions the instance
	// was created with
	Extensions() []string

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// Messenger is the diagnostic message channel. It is created in
// exactly one of the Disabled or Created states, decided by the
// validation configuration, and stays there until teardown.
type Messenger interface {
	// State reports where in its lifecycle the messenger is
	State() MessengerState

	// Destroy unregisters the callback. A no-op when the
	// messenger was never created.
	Destroy()
}

// Surface is an owned window surface bound to an instance.
type Surface interface {
	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// SurfaceSource produces a native surface for an instance handle.
// *sdl.Window satisfies it directly.
type SurfaceSource interface {
	VulkanCreateSurface(instance interface{}) (unsafe.Pointer, error)
}

// Backend creates the handles an Application owns. The production
// implementation is VulkanBackend; selection and creation logic is
// exercised against fakes in tests.
type Backend interface {
	NewInstance(cfg InstanceConfiguration) (Instance, error)
	NewMessenger(instance Instance, cfg ValidationConfiguration) (Messenger, error)
	SelectDevice(instance Instance) (device.Candidate, error)
	NewDevice(candidate device.Candidate) (device.Logical, error)
	BindSurface(instance Instance, source SurfaceSource) (Surface, error)
}
