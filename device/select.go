package device

import "fmt"

// SelectionError reports that no enumerated device exposes a
// graphics-capable queue family. Distinct from a creation failure, it
// means the hardware capability is absent.
type SelectionError struct {
	Devices int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("no suitable device: none of %d physical devices has a graphics-capable queue family", e.Devices)
}

// Select returns the first device, in enumeration order, that has a
// queue family with graphics capability, together with the index of the
// first such family. First fit: enumeration stops at the first match,
// later devices are never scored against it.
func Select(src Source) (Candidate, error) {
	devices, err := src.PhysicalDevices()
	if err != nil {
		return Candidate{}, err
	}

	for _, info := range devices {
		if info.Invalid {
			continue
		}
		for _, family := range info.Families {
			if family.Graphics {
				return Candidate{Device: info, FamilyIndex: family.Index}, nil
			}
		}
	}
	return Candidate{}, &SelectionError{Devices: len(devices)}
}
