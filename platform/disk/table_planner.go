package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

type TableState string

const (
	TableStateNoTable   TableState = "no-table"
	TableStateHasTable  TableState = "has-table"
	TableStateCommitted TableState = "committed"
)

// TablePlan is the partition table that will be written to a disk.
// Origin records whether an existing table is being extended.
type TablePlan struct {
	Disk              DiskChoice
	Firmware          FirmwareMode
	Origin            TableState
	State             TableState
	Text              string
	NewPartitionIndex int
	NewPartitionPath  string
}

func (p TablePlan) ExtendsExistingTable() bool {
	return p.Origin == TableStateHasTable
}

type TablePlanner struct {
	prober    TableProber
	committer TableCommitter
	logger    boshlog.Logger
	logTag    string
}

func NewTablePlanner(prober TableProber, committer TableCommitter, logger boshlog.Logger) TablePlanner {
	return TablePlanner{
		prober:    prober,
		committer: committer,
		logger:    logger,
		logTag:    "TablePlanner",
	}
}

func (p TablePlanner) Plan(disk DiskChoice, size PartitionSize, firmware FirmwareMode) (TablePlan, error) {
	plan := TablePlan{
		Disk:     disk,
		Firmware: firmware,
		Origin:   TableStateNoTable,
	}

	existing, err := p.prober.GetExistingTable(disk.DevicePath())
	if err != nil {
		p.logger.Info(p.logTag, "Treating %s as unpartitioned: %s", disk.DevicePath(), err)
	} else if existing.HasPartitions() {
		plan.Origin = TableStateHasTable
	}
	plan.State = plan.Origin

	switch plan.Origin {
	case TableStateHasTable:
		return p.planExtension(plan, existing, size)
	default:
		return p.planFresh(plan, size)
	}
}

func (p TablePlanner) planFresh(plan TablePlan, size PartitionSize) (TablePlan, error) {
	table := NewFreshPartitionTable(plan.Disk, size, plan.Firmware)
	if err := table.Validate(); err != nil {
		return plan, bosherr.WrapErrorf(err, "Building partition table for `%s'", plan.Disk.DevicePath())
	}

	plan.Text = table.String()
	plan.NewPartitionIndex = 2
	plan.NewPartitionPath = table.Entries[1].DeviceNode

	p.logger.Debug(p.logTag, "Planned new %s partition table for %s", table.Format, plan.Disk.DevicePath())
	return plan, nil
}

func (p TablePlanner) planExtension(plan TablePlan, existing ExistingTable, size PartitionSize) (TablePlan, error) {
	entry, index, err := NextPartitionEntry(existing, plan.Disk, size, plan.Firmware)
	if err != nil {
		return plan, bosherr.WrapErrorf(err, "Extending partition table of `%s'", plan.Disk.DevicePath())
	}

	dump, err := p.prober.DumpTable(plan.Disk.DevicePath())
	if err != nil {
		return plan, bosherr.WrapErrorf(err, "Dumping partition table of `%s'", plan.Disk.DevicePath())
	}

	plan.Text = AppendPartitionEntry(dump, entry)
	plan.NewPartitionIndex = index
	plan.NewPartitionPath = entry.DeviceNode

	p.logger.Info(p.logTag, "Planned partition %d (%s) after %d existing partitions of the %s table on %s",
		index, entry.DeviceNode, len(existing.Partitions), existing.Label, existing.Device)
	return plan, nil
}

// Commit writes the plan once. An empty plan writes nothing.
func (p TablePlanner) Commit(plan TablePlan) (TablePlan, error) {
	if plan.State == TableStateCommitted {
		return plan, bosherr.Errorf("Partition table for `%s' was already written", plan.Disk.DevicePath())
	}

	if plan.Text == "" {
		p.logger.Warn(p.logTag, "Nothing to write to %s", plan.Disk.DevicePath())
		return plan, nil
	}

	if err := p.committer.CommitTable(plan.Disk.DevicePath(), plan.Text); err != nil {
		return plan, err
	}

	plan.State = TableStateCommitted
	return plan, nil
}
