package app

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/clock"
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/mountpoint/mounts"
)

const version = "1.0.0"

type App interface {
	Setup(args []string) error
	Run() error
}

type app struct {
	logger boshlog.Logger
	fs     boshsys.FileSystem
	out    io.Writer
	errOut io.Writer

	opts     Options
	resolver mounts.PathResolver
	detector mounts.Detector

	logTag string
}

func New(logger boshlog.Logger, fs boshsys.FileSystem, out, errOut io.Writer) App {
	return &app{
		logger: logger,
		fs:     fs,
		out:    out,
		errOut: errOut,
		logTag: "App",
	}
}

func (app *app) Setup(args []string) error {
	opts, err := ParseOptions(args)
	if err != nil {
		fmt.Fprintf(app.errOut, "%s: %s\n", progName, err)
		fmt.Fprintf(app.errOut, "Try '%s --help' for more information.\n", progName)
		return bosherr.WrapError(err, "Parsing options")
	}

	app.opts = opts
	app.resolver = mounts.NewOSPathResolver()
	app.detector = mounts.NewDetector(
		mounts.NewProcMountinfoSearcher(app.fs),
		app.resolver,
		clock.NewClock(),
		app.logger,
	)

	return nil
}

func (app *app) Run() error {
	if app.opts.ShowHelp {
		fmt.Fprint(app.out, usageText)
		return nil
	}

	if app.opts.ShowVersion {
		fmt.Fprintf(app.out, "%s %s\n", progName, version)
		return nil
	}

	path := app.opts.Path
	app.logger.Debug(app.logTag, "Inspecting %s", path)

	status, err := app.statPath(path)
	if err != nil {
		if !app.opts.Quiet {
			fmt.Fprintf(app.errOut, "%s: %s: %s\n", progName, path, err)
		}
		return bosherr.WrapErrorf(err, "Statting %s", path)
	}

	if app.opts.ShowBlockDevice {
		return app.reportBlockDevice(path, status)
	}

	// A symlink held back from resolution can never be a mountpoint.
	if app.opts.NoFollow && status.IsSymlink {
		return app.reportNotMountPoint(path)
	}

	decision, err := app.detector.Detect(path, status)
	if err != nil {
		if !app.opts.Quiet {
			fmt.Fprintf(app.errOut, "%s: %s\n", progName, err)
		}
		return bosherr.WrapErrorf(err, "Detecting whether %s is a mountpoint", path)
	}

	if !decision.IsMountPoint {
		return app.reportNotMountPoint(path)
	}

	// The device number is the requested answer, so quiet does not hold it back.
	if app.opts.ShowFilesystemDevice {
		fmt.Fprintf(app.out, "%s\n", decision.Device)
	} else if !app.opts.Quiet {
		fmt.Fprintf(app.out, "%s is a mountpoint\n", path)
	}

	return nil
}

func (app *app) statPath(path string) (mounts.PathStatus, error) {
	if app.opts.NoFollow {
		return app.resolver.Lstat(path)
	}

	return app.resolver.Stat(path)
}

func (app *app) reportBlockDevice(path string, status mounts.PathStatus) error {
	if !status.IsBlockDevice {
		if !app.opts.Quiet {
			fmt.Fprintf(app.errOut, "%s: %s: not a block device\n", progName, path)
		}
		return notBlockDeviceError{path: path}
	}

	fmt.Fprintf(app.out, "%s\n", status.BlockDevice)

	return nil
}

func (app *app) reportNotMountPoint(path string) error {
	if !app.opts.Quiet {
		fmt.Fprintf(app.out, "%s is not a mountpoint\n", path)
	}

	return notMountPointError{path: path}
}
