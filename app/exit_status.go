package app

import (
	"errors"
	"fmt"
)

// Exit statuses are part of the command's contract. Scripts rely on 32
// to tell a clean "not a mountpoint" answer from a genuine failure.
const (
	ExitSuccess       = 0
	ExitFailure       = 1
	ExitNotMountPoint = 32
)

type exitStatuser interface {
	ExitStatus() int
}

// ExitStatus maps an error returned by Setup or Run to a process exit status.
func ExitStatus(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var statuser exitStatuser
	if errors.As(err, &statuser) {
		return statuser.ExitStatus()
	}

	return ExitFailure
}

type notMountPointError struct {
	path string
}

func (e notMountPointError) Error() string {
	return fmt.Sprintf("%s is not a mountpoint", e.path)
}

func (e notMountPointError) ExitStatus() int { return ExitNotMountPoint }

type notBlockDeviceError struct {
	path string
}

func (e notBlockDeviceError) Error() string {
	return fmt.Sprintf("%s: not a block device", e.path)
}

func (e notBlockDeviceError) ExitStatus() int { return ExitNotMountPoint }
