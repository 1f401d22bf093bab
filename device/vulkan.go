package device

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// NewVulkanSource returns a Source backed by the given instance.
func NewVulkanSource(instance vk.Instance) Source {
	return &vulkanSource{instance: instance}
}

type vulkanSource struct {
	instance vk.Instance
}

// PhysicalDevices implements interface
func (s *vulkanSource) PhysicalDevices() ([]Info, error) {
	devices, err := enumerateDevices(s.instance)
	if err != nil {
		return nil, err
	}

	infos := make([]Info, len(devices))
	for i, dev := range devices {
		infos[i] = describeDevice(dev)
	}
	return infos, nil
}

func enumerateDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %w", err)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, availableDevices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %w", err)
	}
	return availableDevices, nil
}

func describeDevice(dev vk.PhysicalDevice) Info {
	var info Info
	info.Handle = dev

	// Get extension info
	var numDeviceExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(dev, "", &numDeviceExtensions, nil)); err != nil {
		info.Invalid = true
	}
	deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(dev, "", &numDeviceExtensions, deviceExt)); err != nil {
		info.Invalid = true
	}
	for _, ext := range deviceExt {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	// Get layers info
	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(dev, &numDeviceLayers, nil)); err != nil {
		info.Invalid = true
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(dev, &numDeviceLayers, deviceLayers)); err != nil {
		info.Invalid = true
	}
	for _, layer := range deviceLayers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	// Get memory info
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(dev, &memoryProperties)
	memoryProperties.Deref()
	for iMem := (uint32)(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
		memoryProperties.MemoryHeaps[iMem].Deref()
		info.Memory = info.Memory + uint(memoryProperties.MemoryHeaps[iMem].Size)
	}

	// Get general device info
	var physicalDeviceProperties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(dev, &physicalDeviceProperties)
	physicalDeviceProperties.Deref()
	info.ID = (int)(physicalDeviceProperties.DeviceID)
	info.VendorID = (int)(physicalDeviceProperties.VendorID)
	info.Name = vk.ToString(physicalDeviceProperties.DeviceName[:])
	info.DriverVersion = (int)(physicalDeviceProperties.DriverVersion)

	info.Families = queueFamilies(dev)
	return info
}

func queueFamilies(dev vk.PhysicalDevice) []Family {
	var queueFamilyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &queueFamilyCount, nil)
	properties := make([]vk.QueueFamilyProperties, queueFamilyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &queueFamilyCount, properties)

	families := make([]Family, queueFamilyCount)
	for i := range properties {
		properties[i].Deref()
		flags := properties[i].QueueFlags
		families[i] = Family{
			Index:    uint32(i),
			Count:    properties[i].QueueCount,
			Graphics: flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Compute:  flags&vk.QueueFlags(vk.QueueComputeBit) != 0,
			Transfer: flags&vk.QueueFlags(vk.QueueTransferBit) != 0,
		}
	}
	return families
}

// NewVulkanDevice creates a logical device for the candidate, requesting
// exactly one queue from the selected family at default priority, and
// retrieves queue index 0 immediately after creation.
func NewVulkanDevice(candidate Candidate) (Logical, error) {
	physicalDevice, ok := candidate.Device.Handle.(vk.PhysicalDevice)
	if !ok {
		return nil, fmt.Errorf("candidate does not hold a vulkan physical device")
	}

	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: candidate.FamilyIndex,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	dci := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queueInfos)),
		PQueueCreateInfos:    queueInfos,
	}

	var vkDevice vk.Device
	if err := vk.Error(vk.CreateDevice(physicalDevice, &dci, nil, &vkDevice)); err != nil {
		return nil, fmt.Errorf("vk.CreateDevice(): %w", err)
	}

	var deviceQueue vk.Queue
	vk.GetDeviceQueue(vkDevice, candidate.FamilyIndex, 0, &deviceQueue)

	return &VulkanDevice{
		device: vkDevice,
		queue:  deviceQueue,
	}, nil
}

// VulkanDevice is an owned vk.Device with its graphics queue.
type VulkanDevice struct {
	device vk.Device
	queue  vk.Queue
}

// Inner implements interface
func (d *VulkanDevice) Inner() interface{} {
	return d.device
}

// Queue implements interface
func (d *VulkanDevice) Queue() interface{} {
	return d.queue
}

// Destroy implements interface
func (d *VulkanDevice) Destroy() {
	vk.DestroyDevice(d.device, nil)
}
