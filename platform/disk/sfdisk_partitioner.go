package disk

import (
	"encoding/json"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type sfdiskJSONOutput struct {
	PartitionTable *struct {
		Label      string                `json:"label"`
		Device     string                `json:"device"`
		Partitions *[]ExistingTableEntry `json:"partitions"`
	} `json:"partitiontable"`
}

type sfdiskPartitioner struct {
	logger    boshlog.Logger
	cmdRunner boshsys.CmdRunner
	logTag    string
}

type SfdiskPartitioner interface {
	TableProber
	TableCommitter
}

func NewSfdiskPartitioner(logger boshlog.Logger, cmdRunner boshsys.CmdRunner) SfdiskPartitioner {
	return sfdiskPartitioner{
		logger:    logger,
		cmdRunner: cmdRunner,
		logTag:    "SfdiskPartitioner",
	}
}

func (p sfdiskPartitioner) GetExistingTable(devicePath string) (ExistingTable, error) {
	stdout, stderr, _, err := p.cmdRunner.RunCommand("sfdisk", "-J", devicePath)
	if err != nil {
		p.logger.Debug(p.logTag, "No readable partition table on %s: %s", devicePath, strings.TrimSpace(stderr))
		return ExistingTable{}, TableProbeFailedError{DevicePath: devicePath, Cause: err}
	}

	var output sfdiskJSONOutput
	if err = json.Unmarshal([]byte(stdout), &output); err != nil {
		return ExistingTable{}, TableProbeFailedError{DevicePath: devicePath, Cause: err}
	}

	if output.PartitionTable == nil {
		return ExistingTable{}, nil
	}

	table := ExistingTable{
		Label:  output.PartitionTable.Label,
		Device: output.PartitionTable.Device,
	}
	if output.PartitionTable.Partitions != nil {
		table.Partitions = *output.PartitionTable.Partitions
	}

	return table, nil
}

func (p sfdiskPartitioner) DumpTable(devicePath string) (string, error) {
	stdout, _, _, err := p.cmdRunner.RunCommand("sfdisk", "-d", devicePath)
	if err != nil {
		return "", TableProbeFailedError{DevicePath: devicePath, Cause: err}
	}

	if strings.TrimSpace(stdout) == "" {
		return "", TableProbeFailedError{DevicePath: devicePath}
	}

	return stdout, nil
}

func (p sfdiskPartitioner) CommitTable(devicePath string, table string) error {
	p.logger.Debug(p.logTag, "Writing partition table to %s:\n%s", devicePath, table)

	_, _, _, err := p.cmdRunner.RunCommandWithInput(table, "sfdisk", devicePath)
	if err != nil {
		p.logger.Error(p.logTag, "Failed to write partition table: %s", err)
		return CommitFailedError{DevicePath: devicePath, Cause: bosherr.WrapError(err, "Shelling out to sfdisk")}
	}

	_, _, _, err = p.cmdRunner.RunCommand("udevadm", "settle")
	if err != nil {
		p.logger.Error(p.logTag, "Failed to run udevadm settle: %s", err)
	}

	p.logger.Info(p.logTag, "Successfully wrote partition table to %s", devicePath)
	return nil
}
