package device_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devblok/miru/device"
)

type stubSource struct {
	devices []device.Info
	err     error
}

func (s *stubSource) PhysicalDevices() ([]device.Info, error) {
	return s.devices, s.err
}

func family(index uint32, graphics bool) device.Family {
	return device.Family{Index: index, Count: 1, Graphics: graphics}
}

func TestSelectFirstFit(t *testing.T) {
	src := &stubSource{devices: []device.Info{
		{Name: "dev0", Families: []device.Family{family(0, false)}},
		{Name: "dev1", Families: []device.Family{family(0, false), family(1, false)}},
		{Name: "dev2", Families: []device.Family{family(0, false), family(1, true)}},
		// A later candidate with more families and more memory must be ignored.
		{Name: "dev3", Memory: 1 << 34, Families: []device.Family{family(0, true), family(1, true)}},
	}}

	candidate, err := device.Select(src)
	require.NoError(t, err)
	assert.Equal(t, "dev2", candidate.Device.Name)
	assert.Equal(t, uint32(1), candidate.FamilyIndex)
}

func TestSelectDeterministic(t *testing.T) {
	src := &stubSource{devices: []device.Info{
		{Name: "dev0", Families: []device.Family{family(0, true)}},
		{Name: "dev1", Families: []device.Family{family(0, true)}},
	}}

	first, err := device.Select(src)
	require.NoError(t, err)
	second, err := device.Select(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelectSkipsInvalidDevices(t *testing.T) {
	src := &stubSource{devices: []device.Info{
		{Name: "broken", Invalid: true, Families: []device.Family{family(0, true)}},
		{Name: "usable", Families: []device.Family{family(0, true)}},
	}}

	candidate, err := device.Select(src)
	require.NoError(t, err)
	assert.Equal(t, "usable", candidate.Device.Name)
}

func TestSelectNoCandidate(t *testing.T) {
	src := &stubSource{devices: []device.Info{
		{Name: "dev0", Families: []device.Family{family(0, false)}},
		{Name: "dev1", Families: []device.Family{family(0, false)}},
	}}

	_, err := device.Select(src)
	require.Error(t, err)

	var selErr *device.SelectionError
	require.ErrorAs(t, err, &selErr)
	assert.Equal(t, 2, selErr.Devices)
}

func TestSelectSourceError(t *testing.T) {
	enumErr := errors.New("enumeration failed")
	_, err := device.Select(&stubSource{err: enumErr})
	assert.ErrorIs(t, err, enumErr)
}

func TestVulkanDeviceRejectsForeignHandle(t *testing.T) {
	_, err := device.NewVulkanDevice(device.Candidate{
		Device: device.Info{Name: "fake", Handle: "not a vulkan handle"},
	})
	assert.Error(t, err)
}
