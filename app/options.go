package app

import (
	"io"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/spf13/pflag"
)

const progName = "mountpoint"

const usageText = `
Usage:
 mountpoint [-qd] /path/to/directory
 mountpoint -x /dev/device

Check whether a directory or file is a mountpoint.

Options:
 -q, --quiet        quiet mode - don't print anything
     --nofollow     do not follow symlink
 -d, --fs-devno     print maj:min device number of the filesystem
 -x, --devno        print maj:min device number of the block device

 -h, --help         display this help
 -V, --version      display version

For more details see mountpoint(1).
`

type Options struct {
	Quiet                bool
	NoFollow             bool
	ShowFilesystemDevice bool
	ShowBlockDevice      bool
	ShowHelp             bool
	ShowVersion          bool

	Path string
}

func ParseOptions(args []string) (Options, error) {
	var opts Options

	flagSet := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.BoolVarP(&opts.Quiet, "quiet", "q", false, "quiet mode - don't print anything")
	flagSet.BoolVar(&opts.NoFollow, "nofollow", false, "do not follow symlink")
	flagSet.BoolVarP(&opts.ShowFilesystemDevice, "fs-devno", "d", false, "print maj:min device number of the filesystem")
	flagSet.BoolVarP(&opts.ShowBlockDevice, "devno", "x", false, "print maj:min device number of the block device")
	flagSet.BoolVarP(&opts.ShowHelp, "help", "h", false, "display this help")
	flagSet.BoolVarP(&opts.ShowVersion, "version", "V", false, "display version")

	err := flagSet.Parse(args[1:])
	if err != nil {
		return opts, err
	}

	// Help and version win over every other argument, valid or not.
	if opts.ShowHelp || opts.ShowVersion {
		return opts, nil
	}

	if opts.ShowBlockDevice && opts.NoFollow {
		return opts, bosherr.Error("--devno and --nofollow are mutually exclusive")
	}

	if flagSet.NArg() != 1 {
		return opts, bosherr.Error("bad usage")
	}

	opts.Path = flagSet.Arg(0)

	return opts, nil
}
