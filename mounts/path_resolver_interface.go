package mounts

// PathStatus is the identity and classification of a path captured by a
// single stat, taken once per invocation.
type PathStatus struct {
	// Device is the filesystem holding the path.
	Device DeviceNumber
	// BlockDevice is the device a block special file stands for; zero
	// unless IsBlockDevice.
	BlockDevice   DeviceNumber
	Inode         uint64
	IsBlockDevice bool
	IsSymlink     bool
}

type PathResolver interface {
	// Stat follows symlinks.
	Stat(path string) (PathStatus, error)

	// Lstat does not follow symlinks.
	Lstat(path string) (PathStatus, error)

	// Canonicalize resolves path to an absolute path free of symlinks
	// and relative segments.
	Canonicalize(path string) (string, error)
}
