package fakes

import (
	"github.com/cloudfoundry/mountpoint/mounts"
)

type FakeDetector struct {
	DetectPaths    []string
	DetectStatuses []mounts.PathStatus
	DetectDecision mounts.MountDecision
	DetectErr      error
}

func NewFakeDetector() *FakeDetector {
	return &FakeDetector{}
}

func (d *FakeDetector) Detect(path string, status mounts.PathStatus) (mounts.MountDecision, error) {
	d.DetectPaths = append(d.DetectPaths, path)
	d.DetectStatuses = append(d.DetectStatuses, status)
	return d.DetectDecision, d.DetectErr
}
