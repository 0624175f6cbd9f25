package app

import (
	"fmt"
	"io"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshdisk "github.com/miniarch/partition-planner/platform/disk"
	boshsettings "github.com/miniarch/partition-planner/settings"
)

type App interface {
	Setup(opts Options, config Config) error
	Run() error
}

type PrompterFactory func() (Prompter, error)

type app struct {
	logger         boshlog.Logger
	fs             boshsys.FileSystem
	runner         boshsys.CmdRunner
	out            io.Writer
	promptsFactory PrompterFactory
	logTag         string

	opts          Options
	firmware      boshdisk.FirmwareMode
	lister        boshdisk.BlockDeviceLister
	planner       boshdisk.TablePlanner
	locator       boshdisk.BootPartitionLocator
	handoffWriter boshsettings.HandoffWriter
}

func New(
	logger boshlog.Logger,
	fs boshsys.FileSystem,
	runner boshsys.CmdRunner,
	out io.Writer,
	promptsFactory PrompterFactory,
) App {
	return &app{
		logger:         logger,
		fs:             fs,
		runner:         runner,
		out:            out,
		promptsFactory: promptsFactory,
		logTag:         "App",
	}
}

func (app *app) Setup(opts Options, config Config) error {
	var err error

	app.opts = opts

	app.firmware, err = config.FirmwareMode()
	if err != nil {
		return bosherr.WrapError(err, "Getting firmware mode")
	}

	app.handoffWriter, err = boshsettings.NewHandoffWriter(app.fs, config.Handoff.Path, config.Handoff.Format, app.logger)
	if err != nil {
		return bosherr.WrapError(err, "Building handoff writer")
	}

	sfdisk := boshdisk.NewSfdiskPartitioner(app.logger, app.runner)

	app.lister = boshdisk.NewLsblkInventory(app.runner, app.logger)
	app.planner = boshdisk.NewTablePlanner(sfdisk, sfdisk, app.logger)
	app.locator = boshdisk.NewPartedBootPartitionLocator(app.runner, app.logger)

	app.logger.Debug(app.logTag, "Set up for %s firmware", app.firmware)
	return nil
}

func (app *app) Run() error {
	inventory, err := app.lister.List()
	if err != nil {
		return bosherr.WrapError(err, "Getting block devices")
	}

	choices, err := boshdisk.EligibleDisks(boshdisk.CalculateFreeSpace(inventory))
	if err != nil {
		return err
	}

	disk, size, err := app.selectDiskAndSize(choices)
	if err != nil {
		return bosherr.WrapError(err, "Selecting disk")
	}

	app.logger.Info(app.logTag, "Partitioning %s with %s for the new partition", disk.DevicePath(), size)

	plan, err := app.planner.Plan(disk, size, app.firmware)
	if err != nil {
		return bosherr.WrapError(err, "Planning partition table")
	}

	if app.opts.DryRun {
		fmt.Fprint(app.out, plan.Text)
		return nil
	}

	plan, err = app.planner.Commit(plan)
	if err != nil {
		return bosherr.WrapError(err, "Committing partition table")
	}

	if plan.State != boshdisk.TableStateCommitted {
		return bosherr.Errorf("No partition table was written to `%s'", disk.DevicePath())
	}

	boot := boshdisk.DefaultBootPartition(disk)
	if plan.ExtendsExistingTable() {
		boot = app.locator.Locate(disk)
	}

	handoff := boshsettings.Handoff{
		BootPartitionPath:       boot.Path,
		BootPartitionPreexisted: boot.Preexisted,
		NewPartitionPath:        plan.NewPartitionPath,
	}

	err = app.handoffWriter.Write(handoff)
	if err != nil {
		return bosherr.WrapError(err, "Handing off installation variables")
	}

	app.logger.Info(app.logTag, "Created partition %d (%s), boot partition %d (%s)",
		plan.NewPartitionIndex, handoff.NewPartitionPath, boot.Index, handoff.BootPartitionPath)
	return nil
}

func (app *app) selectDiskAndSize(choices []boshdisk.DiskChoice) (boshdisk.DiskChoice, boshdisk.PartitionSize, error) {
	var selector *Selector

	if app.opts.Disk == "" || app.opts.Size == "" {
		prompter, err := app.promptsFactory()
		if err != nil {
			return boshdisk.DiskChoice{}, boshdisk.PartitionSize{}, err
		}
		defer prompter.Close() //nolint:errcheck

		s := NewSelector(prompter, app.out)
		selector = &s
	}

	var disk boshdisk.DiskChoice
	var err error

	if app.opts.Disk != "" {
		disk, err = SelectDisk(choices, app.opts.Disk)
	} else {
		disk, err = selector.ChooseDisk(choices)
	}
	if err != nil {
		return disk, boshdisk.PartitionSize{}, err
	}

	var size boshdisk.PartitionSize

	if app.opts.Size != "" {
		size, err = SelectPartitionSize(disk, app.opts.Size)
	} else {
		size, err = selector.ChoosePartitionSize(disk)
	}

	return disk, size, err
}
