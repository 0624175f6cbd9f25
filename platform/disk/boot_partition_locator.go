package disk

import (
	"encoding/json"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const DefaultBootPartitionIndex = 1

type BootPartition struct {
	Path       string
	Index      int
	Preexisted bool
}

func DefaultBootPartition(disk DiskChoice) BootPartition {
	return BootPartition{
		Path:  PartitionDevicePath(disk.NumberingPrefix(), DefaultBootPartitionIndex),
		Index: DefaultBootPartitionIndex,
	}
}

type partedJSONOutput struct {
	Disk struct {
		Partitions []struct {
			Number int      `json:"number"`
			Flags  []string `json:"flags"`
		} `json:"partitions"`
	} `json:"disk"`
}

type partedBootPartitionLocator struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewPartedBootPartitionLocator(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) BootPartitionLocator {
	return partedBootPartitionLocator{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "BootPartitionLocator",
	}
}

// Locate returns the first partition flagged 'boot', or the default first
// partition when the probe fails or nothing is flagged.
func (l partedBootPartitionLocator) Locate(disk DiskChoice) BootPartition {
	fallback := DefaultBootPartition(disk)

	stdout, _, _, err := l.cmdRunner.RunCommand("parted", "-j", disk.DevicePath(), "print")
	if err != nil {
		l.logger.Warn(l.logTag, "Failed to read partition flags of %s: %s", disk.DevicePath(), err)
		return fallback
	}

	var output partedJSONOutput
	if err = json.Unmarshal([]byte(stdout), &output); err != nil {
		l.logger.Warn(l.logTag, "Failed to parse partition flags of %s: %s", disk.DevicePath(), err)
		return fallback
	}

	for _, partition := range output.Disk.Partitions {
		for _, flag := range partition.Flags {
			if flag == "boot" {
				l.logger.Info(l.logTag, "Found existing boot partition %d on %s", partition.Number, disk.DevicePath())
				return BootPartition{
					Path:       PartitionDevicePath(disk.NumberingPrefix(), partition.Number),
					Index:      partition.Number,
					Preexisted: true,
				}
			}
		}
	}

	l.logger.Info(l.logTag, "No existing boot partition on %s", disk.DevicePath())
	return fallback
}
