package mounts

// MountTable is a point-in-time snapshot of active mounts, ordered
// oldest-first as the source lists them.
type MountTable []Mount

// FindTarget returns the entry mounted on the given path. Later mounts
// shadow earlier ones at the same path, so the scan runs most-recent-first.
func (t MountTable) FindTarget(path string) (Mount, bool) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].MountPoint == path {
			return t[i], true
		}
	}

	return Mount{}, false
}
