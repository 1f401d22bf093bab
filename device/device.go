package device

// Family describes one queue family of a physical device.
type Family struct {
	Index uint32
	Count uint32

	Graphics bool
	Compute  bool
	Transfer bool
}

// Info describes available physical properties of a rendering device
type Info struct {
	// Handle is the underlying API handle. It is borrowed from the
	// instance enumeration, never owned.
	Handle interface{}

	ID            int
	VendorID      int
	DriverVersion int
	Name          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        uint
	Families      []Family
}

// Candidate pairs a physical device with the index of a queue family
// that satisfies graphics submission.
type Candidate struct {
	Device      Info
	FamilyIndex uint32
}

// Source enumerates the physical devices an instance exposes, in a
// stable order.
type Source interface {
	PhysicalDevices() ([]Info, error)
}

// Logical is a created logical device together with its submission
// queue.
type Logical interface {
	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Queue returns the graphics queue retrieved at creation. The
	// queue is a weak reference, destroying the device invalidates it.
	Queue() interface{}

	// Destroy destroys internal members
	Destroy()
}
