package mounts

import "fmt"

// DeviceNumber identifies a filesystem or block device by the kernel's
// major and minor numbers.
type DeviceNumber struct {
	Major uint32
	Minor uint32
}

func (d DeviceNumber) String() string {
	return fmt.Sprintf("%d:%d", d.Major, d.Minor)
}
