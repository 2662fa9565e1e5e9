package mounts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/mountpoint/mounts"
)

var _ = Describe("MountTable", func() {
	Describe("FindTarget", func() {
		table := MountTable{
			{MountPoint: "/", Device: DeviceNumber{Major: 8, Minor: 1}},
			{MountPoint: "/mnt/data", Device: DeviceNumber{Major: 8, Minor: 16}},
			{MountPoint: "/mnt/data", Device: DeviceNumber{Major: 8, Minor: 32}},
		}

		It("finds the entry mounted on the given path", func() {
			entry, found := table.FindTarget("/")
			Expect(found).To(BeTrue())
			Expect(entry.Device).To(Equal(DeviceNumber{Major: 8, Minor: 1}))
		})

		It("prefers the most recent entry when mounts are stacked on one path", func() {
			entry, found := table.FindTarget("/mnt/data")
			Expect(found).To(BeTrue())
			Expect(entry.Device).To(Equal(DeviceNumber{Major: 8, Minor: 32}))
		})

		It("reports when no entry matches", func() {
			_, found := table.FindTarget("/home")
			Expect(found).To(BeFalse())
		})
	})
})
