package mounts_test

import (
	"errors"

	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/mountpoint/mounts"
)

var _ = Describe("procMountinfoSearcher", func() {
	var (
		fs       *fakesys.FakeFileSystem
		searcher MountsSearcher
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		searcher = NewProcMountinfoSearcher(fs)
	})

	Describe("SearchMounts", func() {
		Context("when /proc/self/mountinfo is readable", func() {
			BeforeEach(func() {
				err := fs.WriteFileString("/proc/self/mountinfo",
					`21 26 0:19 / /sys rw,nosuid shared:2 - sysfs sysfs rw
26 1 8:1 / / rw,relatime shared:1 - ext4 /dev/sda1 rw
101 26 8:16 / /mnt/backups rw,relatime shared:51 - ext4 /dev/sdb rw
`)
				Expect(err).ToNot(HaveOccurred())
			})

			It("returns entries in the order the kernel lists them", func() {
				table, err := searcher.SearchMounts()
				Expect(err).ToNot(HaveOccurred())
				Expect(table).To(Equal(MountTable{
					{MountPoint: "/sys", Device: DeviceNumber{Major: 0, Minor: 19}},
					{MountPoint: "/", Device: DeviceNumber{Major: 8, Minor: 1}},
					{MountPoint: "/mnt/backups", Device: DeviceNumber{Major: 8, Minor: 16}},
				}))
			})
		})

		Context("when a mount point contains escaped characters", func() {
			BeforeEach(func() {
				err := fs.WriteFileString("/proc/self/mountinfo",
					"105 26 8:17 / /mnt/with\\040space rw,relatime shared:52 - ext4 /dev/sdb1 rw\n")
				Expect(err).ToNot(HaveOccurred())
			})

			It("unescapes the octal sequences", func() {
				table, err := searcher.SearchMounts()
				Expect(err).ToNot(HaveOccurred())
				Expect(table).To(HaveLen(1))
				Expect(table[0].MountPoint).To(Equal("/mnt/with space"))
			})
		})

		Context("when reading fails", func() {
			BeforeEach(func() {
				fs.RegisterReadFileError("/proc/self/mountinfo", errors.New("fake-read-err"))
			})

			It("returns a wrapped error", func() {
				_, err := searcher.SearchMounts()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("Reading /proc/self/mountinfo"))
				Expect(err.Error()).To(ContainSubstring("fake-read-err"))
			})
		})

		Context("when the contents are not in mountinfo format", func() {
			BeforeEach(func() {
				err := fs.WriteFileString("/proc/self/mountinfo", "total garbage\n")
				Expect(err).ToNot(HaveOccurred())
			})

			It("returns a wrapped error", func() {
				_, err := searcher.SearchMounts()
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("Parsing /proc/self/mountinfo"))
			})
		})
	})
})
