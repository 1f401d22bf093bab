package core

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vk "github.com/vulkan-go/vulkan"
)

func TestMessengerDisabledLifecycle(t *testing.T) {
	messenger, err := NewMessenger(nil, ValidationConfiguration{Enabled: false, Layer: DefaultValidationLayer})
	require.NoError(t, err)
	assert.Equal(t, MessengerDisabled, messenger.State())

	// Teardown of a never-created messenger is a no-op.
	messenger.Destroy()
	assert.Equal(t, MessengerDisabled, messenger.State())
}

func TestDebugCallbackEmitsAndContinues(t *testing.T) {
	logger, hook := test.NewNullLogger()
	previous := debugSink
	debugSink = logger
	defer func() { debugSink = previous }()

	ret := debugReportCallback(
		vk.DebugReportFlags(vk.DebugReportWarningBit),
		vk.DebugReportObjectType(0), 0, 0, 0, "layer",
		"swapchain image count out of range", nil)

	assert.True(t, ret == vk.False, "callback must never abort the triggering call")
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "[Debug][Warning][Validation]swapchain image count out of range", hook.LastEntry().Message)
}

func TestDebugSeverityAndCategory(t *testing.T) {
	cases := []struct {
		name     string
		flags    vk.DebugReportFlags
		severity string
		category string
	}{
		{"error", vk.DebugReportFlags(vk.DebugReportErrorBit), "Error", "Validation"},
		{"warning", vk.DebugReportFlags(vk.DebugReportWarningBit), "Warning", "Validation"},
		{"performance", vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit), "Warning", "Performance"},
		{"verbose", vk.DebugReportFlags(vk.DebugReportDebugBit), "Verbose", "General"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.severity, debugSeverity(tc.flags))
			assert.Equal(t, tc.category, debugCategory(tc.flags))
		})
	}
}

func TestFormatDebugMessage(t *testing.T) {
	line := formatDebugMessage("Error", "General", "loader failure")
	assert.Equal(t, "[Debug][Error][General]loader failure", line)
}
