package core

// DefaultValidationLayer is the layer requested when validation is enabled
// and no other layer is configured.
const DefaultValidationLayer = "VK_LAYER_KHRONOS_validation"

// Configuration defines a global engine configuration setting
type Configuration struct {
	Window   WindowConfiguration
	Time     TimeConfiguration
	Instance InstanceConfiguration
}

// WindowConfiguration is used to create the application window
type WindowConfiguration struct {
	Title string

	Width  uint32
	Height uint32
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int

	// EventPollDelay is the delay between event queue drains,
	// in milliseconds
	EventPollDelay int
}

// ValidationConfiguration decides, once at process start, whether the
// validation layer and the debug messenger are wired in. Never mutated
// after that.
type ValidationConfiguration struct {
	Enabled bool
	Layer   string
}

// InstanceConfiguration carries everything instance creation needs:
// the negotiated extension and layer lists, the portability-enumeration
// flag and the validation settings the lists were derived from.
type InstanceConfiguration struct {
	Extensions []string
	Layers     []string

	// Portability requests portability-device enumeration on platforms
	// whose loader requires it.
	Portability bool

	Validation ValidationConfiguration
}
