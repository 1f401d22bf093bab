package core

import (
	"fmt"
	"unsafe"

	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// MessengerState tracks the diagnostic channel lifecycle.
type MessengerState int

const (
	// MessengerDisabled means validation is off and no callback
	// was ever registered.
	MessengerDisabled MessengerState = iota

	// MessengerCreated means the callback is registered and live.
	MessengerCreated

	// MessengerDestroyed means the callback has been unregistered.
	MessengerDestroyed
)

// debugSink receives the formatted diagnostic lines. Logrus serializes
// its writes, which matters because the driver may invoke the callback
// on any thread.
var debugSink = log.StandardLogger()

// NewMessenger registers the debug-report callback against the instance.
// With validation disabled it returns a messenger in the Disabled state
// without touching the API at all.
func NewMessenger(instance Instance, cfg ValidationConfiguration) (Messenger, error) {
	if !cfg.Enabled {
		return &VulkanMessenger{state: MessengerDisabled}, nil
	}

	inner, ok := instance.Inner().(vk.Instance)
	if !ok {
		return nil, &InitializationError{Stage: "messenger", Err: fmt.Errorf("instance does not hold a vulkan handle")}
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(inner, debugReportCreateInfo(), nil, &callback)); err != nil {
		return nil, &InitializationError{Stage: "messenger", Err: fmt.Errorf("vk.CreateDebugReportCallback(): %w", err)}
	}

	return &VulkanMessenger{
		state:    MessengerCreated,
		instance: inner,
		callback: callback,
	}, nil
}

// VulkanMessenger owns a registered debug-report callback.
type VulkanMessenger struct {
	state    MessengerState
	instance vk.Instance
	callback vk.DebugReportCallback
}

// State implements interface
func (m *VulkanMessenger) State() MessengerState {
	return m.state
}

// Destroy implements interface
func (m *VulkanMessenger) Destroy() {
	if m.state != MessengerCreated {
		return
	}
	vk.DestroyDebugReportCallback(m.instance, m.callback, nil)
	m.state = MessengerDestroyed
}

func debugReportCreateInfo() *vk.DebugReportCallbackCreateInfo {
	return &vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit |
			vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit |
			vk.DebugReportDebugBit),
		PfnCallback: debugReportCallback,
	}
}

// debugReportCallback formats a diagnostic line into the sink. It must
// never abort the triggering call, so it always answers vk.False, and
// it must not be used for control flow.
func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {

	debugSink.Print(formatDebugMessage(debugSeverity(flags), debugCategory(flags), message))
	return vk.False
}

func debugSeverity(flags vk.DebugReportFlags) string {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return "Error"
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit|vk.DebugReportPerformanceWarningBit) != 0:
		return "Warning"
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		return "Verbose"
	default:
		return "Unknown"
	}
}

func debugCategory(flags vk.DebugReportFlags) string {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		return "Performance"
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit|vk.DebugReportWarningBit) != 0:
		return "Validation"
	default:
		return "General"
	}
}

func formatDebugMessage(severity, category, message string) string {
	return fmt.Sprintf("[Debug][%s][%s]%s", severity, category, message)
}
