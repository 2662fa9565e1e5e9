package main

import (
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshapp "github.com/cloudfoundry/mountpoint/app"
)

const mainLogTag = "main"

func main() {
	logger := newLogger()
	defer logger.HandlePanic("Main")

	logger.Debug(mainLogTag, "Starting mountpoint")

	app := boshapp.New(logger, boshsys.NewOsFileSystem(logger), os.Stdout, os.Stderr)

	err := app.Setup(os.Args)
	if err != nil {
		logger.Error(mainLogTag, "App setup %s", err.Error())
		os.Exit(boshapp.ExitStatus(err))
	}

	err = app.Run()
	if err != nil {
		logger.Error(mainLogTag, "App run %s", err.Error())
		os.Exit(boshapp.ExitStatus(err))
	}
}

func newLogger() boshlog.Logger {
	level := boshlog.LevelNone

	levelName := os.Getenv("MOUNTPOINT_LOG_LEVEL")
	if levelName != "" {
		parsedLevel, err := boshlog.Levelify(levelName)
		if err == nil {
			level = parsedLevel
		}
	}

	return boshlog.NewWriterLogger(level, os.Stderr)
}
