package mounts

type Mount struct {
	MountPoint string
	Device     DeviceNumber
}

type MountsSearcher interface {
	SearchMounts() (MountTable, error)
}
