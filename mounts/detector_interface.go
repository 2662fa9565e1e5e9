package mounts

// MountDecision is the outcome of one inspection. Device carries the
// filesystem's device number and is meaningful only when IsMountPoint.
type MountDecision struct {
	IsMountPoint bool
	Device       DeviceNumber
}

type Detector interface {
	Detect(path string, status PathStatus) (MountDecision, error)
}
