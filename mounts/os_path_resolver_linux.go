package mounts

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

type osPathResolver struct{}

func NewOSPathResolver() PathResolver {
	return osPathResolver{}
}

func (r osPathResolver) Stat(path string) (PathStatus, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return PathStatus{}, err
	}

	return statusFromStat(st), nil
}

func (r osPathResolver) Lstat(path string) (PathStatus, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return PathStatus{}, err
	}

	return statusFromStat(st), nil
}

func (r osPathResolver) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

func statusFromStat(st unix.Stat_t) PathStatus {
	status := PathStatus{
		Device:        deviceNumberFromDev(uint64(st.Dev)),
		Inode:         st.Ino,
		IsBlockDevice: st.Mode&unix.S_IFMT == unix.S_IFBLK,
		IsSymlink:     st.Mode&unix.S_IFMT == unix.S_IFLNK,
	}

	if status.IsBlockDevice {
		status.BlockDevice = deviceNumberFromDev(uint64(st.Rdev))
	}

	return status
}

func deviceNumberFromDev(dev uint64) DeviceNumber {
	return DeviceNumber{Major: unix.Major(dev), Minor: unix.Minor(dev)}
}
