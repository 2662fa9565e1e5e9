package mounts

import (
	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

type detector struct {
	searcher    MountsSearcher
	resolver    PathResolver
	timeService clock.Clock
	logger      boshlog.Logger
	logTag      string
}

func NewDetector(
	searcher MountsSearcher,
	resolver PathResolver,
	timeService clock.Clock,
	logger boshlog.Logger,
) Detector {
	return detector{
		searcher:    searcher,
		resolver:    resolver,
		timeService: timeService,
		logger:      logger,
		logTag:      "Detector",
	}
}

// Detect tries the mount table once and, only if the table cannot be
// loaded, compares device numbers across the parent directory once.
// Neither strategy is retried.
func (d detector) Detect(path string, status PathStatus) (MountDecision, error) {
	start := d.timeService.Now()

	table, tableErr := d.searcher.SearchMounts()

	target := d.canonicalPath(path)

	if tableErr != nil {
		d.logger.Debug(d.logTag, "Mount table unavailable, falling back to device comparison: %s", tableErr.Error())

		decision, err := d.compareDeviceBoundary(target, status)
		if err != nil {
			return MountDecision{}, err
		}

		d.logger.Debug(d.logTag, "Inspected %s via device comparison in %s", path, d.timeService.Since(start))

		return decision, nil
	}

	decision := MountDecision{}
	if entry, found := table.FindTarget(target); found {
		decision = MountDecision{IsMountPoint: true, Device: entry.Device}
	}

	d.logger.Debug(d.logTag, "Inspected %s against %d mount entries in %s", path, len(table), d.timeService.Since(start))

	return decision, nil
}

// compareDeviceBoundary cannot see bind mounts: a bind mount keeps its
// device number across the boundary.
func (d detector) compareDeviceBoundary(target string, status PathStatus) (MountDecision, error) {
	parentStatus, err := d.resolver.Stat(target + "/..")
	if err != nil {
		return MountDecision{}, bosherr.WrapErrorf(err, "Statting parent directory of %s", target)
	}

	// A path sharing its parent's inode is the root of a filesystem.
	if status.Device != parentStatus.Device || status.Inode == parentStatus.Inode {
		return MountDecision{IsMountPoint: true, Device: status.Device}, nil
	}

	return MountDecision{}, nil
}

func (d detector) canonicalPath(path string) string {
	canonical, err := d.resolver.Canonicalize(path)
	if err != nil {
		d.logger.Debug(d.logTag, "Canonicalizing %s failed, using the path as given: %s", path, err.Error())
		return path
	}

	return canonical
}
