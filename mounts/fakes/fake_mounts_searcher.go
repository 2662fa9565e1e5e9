package fakes

import (
	"github.com/cloudfoundry/mountpoint/mounts"
)

type FakeMountsSearcher struct {
	SearchMountsCallCount int
	SearchMountsTable     mounts.MountTable
	SearchMountsErr       error
}

func NewFakeMountsSearcher() *FakeMountsSearcher {
	return &FakeMountsSearcher{}
}

func (s *FakeMountsSearcher) SearchMounts() (mounts.MountTable, error) {
	s.SearchMountsCallCount++
	return s.SearchMountsTable, s.SearchMountsErr
}
