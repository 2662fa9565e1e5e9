package mounts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/mountpoint/mounts"
)

var _ = Describe("DeviceNumber", func() {
	It("renders as a decimal major:minor pair", func() {
		Expect(DeviceNumber{Major: 8, Minor: 1}.String()).To(Equal("8:1"))
		Expect(DeviceNumber{Major: 0, Minor: 26}.String()).To(Equal("0:26"))
		Expect(DeviceNumber{Major: 259, Minor: 3}.String()).To(Equal("259:3"))
	})
})
