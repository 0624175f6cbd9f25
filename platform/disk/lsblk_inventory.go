package disk

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

type DeviceRole string

const (
	DeviceRoleDisk      DeviceRole = "disk"
	DeviceRolePartition DeviceRole = "part"
)

// Column positions of plain `lsblk` output:
// NAME MAJ:MIN RM SIZE RO TYPE MOUNTPOINTS
const (
	defaultNameColumn = 0
	defaultSizeColumn = 3
	defaultRoleColumn = 5
)

const treeGlyphs = "├└─│|`-"

type BlockDevice struct {
	Label string
	Role  DeviceRole
	Size  SectorCount

	// ParentDisk is set only when the partition sits directly below a disk
	// row of the listing. Partitions of RAID, multipath or crypt devices
	// leave it empty.
	ParentDisk string
}

type Inventory struct {
	Devices []BlockDevice
}

func (i Inventory) Disks() []BlockDevice {
	return i.withRole(DeviceRoleDisk)
}

func (i Inventory) Partitions() []BlockDevice {
	return i.withRole(DeviceRolePartition)
}

func (i Inventory) DiskSizes() map[string]SectorCount {
	return sizesByLabel(i.Disks())
}

func (i Inventory) PartitionSizes() map[string]SectorCount {
	return sizesByLabel(i.Partitions())
}

// PartitionsOf falls back to matching on the label prefix when the
// listing carried no nesting, which also covers nvme style 'p' infixes.
func (i Inventory) PartitionsOf(disk BlockDevice) []BlockDevice {
	var partitions []BlockDevice

	for _, partition := range i.Partitions() {
		if partition.ParentDisk != "" {
			if partition.ParentDisk == disk.Label {
				partitions = append(partitions, partition)
			}
			continue
		}

		if strings.HasPrefix(partition.Label, disk.Label) {
			partitions = append(partitions, partition)
		}
	}

	return partitions
}

func (i Inventory) withRole(role DeviceRole) []BlockDevice {
	var devices []BlockDevice
	for _, device := range i.Devices {
		if device.Role == role {
			devices = append(devices, device)
		}
	}
	return devices
}

func sizesByLabel(devices []BlockDevice) map[string]SectorCount {
	sizes := map[string]SectorCount{}
	for _, device := range devices {
		sizes[device.Label] = device.Size
	}
	return sizes
}

// ParseLsblkOutput reads the tabular output of lsblk. Rows that are not
// disks or partitions, or that lack a readable size, are skipped.
func ParseLsblkOutput(output string) Inventory {
	var inventory Inventory

	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return inventory
	}

	header := strings.Fields(lines[0])
	nameColumn := columnIndex(header, "NAME", defaultNameColumn)
	sizeColumn := columnIndex(header, "SIZE", defaultSizeColumn)
	roleColumn := columnIndex(header, "TYPE", defaultRoleColumn)

	var ancestors []treeRow

	for _, line := range lines[1:] {
		fields := strings.Fields(line)

		nested := false
		for len(fields) > 0 && strings.TrimLeft(fields[0], treeGlyphs) == "" {
			fields = fields[1:]
			nested = true
		}

		if len(fields) <= nameColumn {
			continue
		}

		rawLabel := fields[nameColumn]
		label := strings.TrimLeft(rawLabel, treeGlyphs)
		if label != rawLabel {
			nested = true
		}

		var role DeviceRole
		if len(fields) > roleColumn {
			role = DeviceRole(fields[roleColumn])
		}

		depth := 0
		if nested {
			depth = 1
			if nameColumn == 0 {
				depth = max(treeDepth(line), 1)
			}
		}

		var parent treeRow
		if depth > 0 && len(ancestors) >= depth {
			parent = ancestors[depth-1]
		}

		for len(ancestors) < depth {
			ancestors = append(ancestors, treeRow{})
		}
		ancestors = append(ancestors[:depth], treeRow{label: label, role: role})

		if role != DeviceRoleDisk && role != DeviceRolePartition {
			continue
		}

		if len(fields) <= sizeColumn {
			continue
		}

		size, err := ParseSize(fields[sizeColumn])
		if err != nil {
			continue
		}

		device := BlockDevice{Label: label, Role: role, Size: size}
		if role == DeviceRolePartition && parent.role == DeviceRoleDisk {
			device.ParentDisk = parent.label
		}

		inventory.Devices = append(inventory.Devices, device)
	}

	return inventory
}

type treeRow struct {
	label string
	role  DeviceRole
}

// treeDepth counts two columns of tree prefix per nesting level, e.g.
// "├─" is 1 and "│ └─" or "  └─" is 2.
func treeDepth(line string) int {
	width := 0
	for _, char := range line {
		if char != ' ' && !strings.ContainsRune(treeGlyphs, char) {
			break
		}
		width++
	}
	return width / 2
}

func columnIndex(header []string, name string, fallback int) int {
	for index, column := range header {
		if strings.EqualFold(column, name) {
			return index
		}
	}
	return fallback
}

type lsblkInventory struct {
	cmdRunner boshsys.CmdRunner
	logger    boshlog.Logger
	logTag    string
}

func NewLsblkInventory(cmdRunner boshsys.CmdRunner, logger boshlog.Logger) BlockDeviceLister {
	return lsblkInventory{
		cmdRunner: cmdRunner,
		logger:    logger,
		logTag:    "LsblkInventory",
	}
}

func (i lsblkInventory) List() (Inventory, error) {
	stdout, _, _, err := i.cmdRunner.RunCommand("lsblk")
	if err != nil {
		return Inventory{}, bosherr.WrapError(err, "Listing block devices")
	}

	inventory := ParseLsblkOutput(stdout)
	i.logger.Debug(i.logTag, "Found %d disks and %d partitions", len(inventory.Disks()), len(inventory.Partitions()))

	return inventory, nil
}
