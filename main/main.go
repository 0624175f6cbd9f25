package main

import (
	"os"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshapp "github.com/miniarch/partition-planner/app"
)

const mainLogTag = "main"

func main() {
	logger := boshlog.NewWriterLogger(boshlog.LevelError, os.Stderr)
	defer logger.HandlePanic("Main")

	command := boshapp.NewCommand(func(opts boshapp.Options) error {
		return run(logger, opts)
	})

	if err := command.Execute(); err != nil {
		logger.Error(mainLogTag, "App run %s", err.Error())
		os.Exit(1)
	}
}

func run(bootLogger boshlog.Logger, opts boshapp.Options) error {
	config, err := boshapp.LoadConfig(boshsys.NewOsFileSystem(bootLogger), opts.ConfigPath, boshapp.EnvironToMap(os.Environ()))
	if err != nil {
		return bosherr.WrapError(err, "Loading config")
	}
	opts.ApplyTo(&config)

	level, err := boshlog.Levelify(config.LogLevel)
	if err != nil {
		return err
	}

	logger := boshlog.NewWriterLogger(level, os.Stderr)
	logger.Debug(mainLogTag, "Starting partition planner")

	app := boshapp.New(
		logger,
		boshsys.NewOsFileSystem(logger),
		boshsys.NewExecCmdRunner(logger),
		os.Stdout,
		func() (boshapp.Prompter, error) {
			return boshapp.NewReadlinePrompter(os.Stdin, os.Stdout)
		},
	)

	err = app.Setup(opts, config)
	if err != nil {
		return bosherr.WrapError(err, "App setup")
	}

	return app.Run()
}
