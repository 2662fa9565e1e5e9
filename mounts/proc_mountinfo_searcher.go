package mounts

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/moby/sys/mountinfo"
)

const procMountinfoPath = "/proc/self/mountinfo"

type procMountinfoSearcher struct {
	fs boshsys.FileSystem
}

func NewProcMountinfoSearcher(fs boshsys.FileSystem) MountsSearcher {
	return procMountinfoSearcher{fs}
}

func (s procMountinfoSearcher) SearchMounts() (MountTable, error) {
	contents, err := s.fs.ReadFileString(procMountinfoPath)
	if err != nil {
		return MountTable{}, bosherr.WrapError(err, "Reading /proc/self/mountinfo")
	}

	entries, err := mountinfo.GetMountsFromReader(strings.NewReader(contents), nil)
	if err != nil {
		return MountTable{}, bosherr.WrapError(err, "Parsing /proc/self/mountinfo")
	}

	table := make(MountTable, 0, len(entries))
	for _, entry := range entries {
		table = append(table, Mount{
			MountPoint: entry.Mountpoint,
			Device:     DeviceNumber{Major: uint32(entry.Major), Minor: uint32(entry.Minor)},
		})
	}

	return table, nil
}
