package disk

import (
	"fmt"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

type FirmwareMode int

const (
	FirmwareBIOS FirmwareMode = iota
	FirmwareUEFI
)

func (m FirmwareMode) String() string {
	if m == FirmwareUEFI {
		return "uefi"
	}
	return "bios"
}

type TableFormat string

const (
	TableFormatGPT TableFormat = "gpt"
	TableFormatMBR TableFormat = "dos"
)

const (
	EFISystemPartitionType = "C12A7328-F81F-11D2-BA4B-00A0C93EC93B"
	LinuxFilesystemType    = "0FC63DAF-8483-4772-8E79-3D69D8477DE4"
	MBRLinuxType           = "83"
)

const (
	FirstUsableSector  SectorCount = 2048
	BootPartitionSize  SectorCount = 1048576
	RootPartitionStart             = FirstUsableSector + BootPartitionSize
)

// MBR extended partitions contain the logical ones, so they are allowed
// to overlap other entries.
var extendedPartitionTypes = map[string]bool{"5": true, "f": true, "85": true}

type PartitionTableEntry struct {
	DeviceNode string
	Start      SectorCount
	Size       PartitionSize
	Type       string
	Bootable   bool
}

func (e PartitionTableEntry) String() string {
	fields := []string{fmt.Sprintf("start=%12d", e.Start)}
	if !e.Size.Remaining {
		fields = append(fields, fmt.Sprintf("size=%12d", e.Size.Sectors))
	}
	fields = append(fields, "type="+e.Type)
	if e.Bootable {
		fields = append(fields, "bootable")
	}

	return fmt.Sprintf("%s : %s", e.DeviceNode, strings.Join(fields, ", "))
}

type PartitionTable struct {
	Format      TableFormat
	DeviceLabel string
	SectorSize  SectorCount
	FirstLBA    SectorCount
	Entries     []PartitionTableEntry
}

func linuxPartitionType(firmware FirmwareMode) string {
	if firmware == FirmwareUEFI {
		return LinuxFilesystemType
	}
	return MBRLinuxType
}

// NewFreshPartitionTable lays out a boot partition followed by the
// requested partition on an unpartitioned disk.
func NewFreshPartitionTable(disk DiskChoice, size PartitionSize, firmware FirmwareMode) PartitionTable {
	prefix := disk.NumberingPrefix()

	table := PartitionTable{
		Format:      TableFormatMBR,
		DeviceLabel: disk.Label,
		SectorSize:  SectorSizeInBytes,
	}

	boot := PartitionTableEntry{
		DeviceNode: PartitionDevicePath(prefix, 1),
		Start:      FirstUsableSector,
		Size:       SizeInSectors(BootPartitionSize),
		Type:       MBRLinuxType,
		Bootable:   true,
	}

	if firmware == FirmwareUEFI {
		table.Format = TableFormatGPT
		table.FirstLBA = FirstUsableSector
		boot.Type = EFISystemPartitionType
		boot.Bootable = false
	}

	table.Entries = []PartitionTableEntry{
		boot,
		{
			DeviceNode: PartitionDevicePath(prefix, 2),
			Start:      RootPartitionStart,
			Size:       size,
			Type:       linuxPartitionType(firmware),
		},
	}

	return table
}

func (t PartitionTable) String() string {
	lines := []string{
		fmt.Sprintf("label: %s", t.Format),
		fmt.Sprintf("device: /dev/%s", t.DeviceLabel),
		"unit: sectors",
	}
	if t.FirstLBA > 0 {
		lines = append(lines, fmt.Sprintf("first-lba: %d", t.FirstLBA))
	}
	lines = append(lines, fmt.Sprintf("sector-size: %d", t.SectorSize), "")

	for _, entry := range t.Entries {
		lines = append(lines, entry.String())
	}

	return strings.Join(lines, "\n") + "\n"
}

// Validate checks that entries are ordered and do not overlap. Only the
// last entry may take the remaining space.
func (t PartitionTable) Validate() error {
	var nextFree SectorCount

	for index, entry := range t.Entries {
		if entry.Start < nextFree {
			return bosherr.Errorf("Partition `%s' starts at sector %d, inside the previous partition ending at %d",
				entry.DeviceNode, entry.Start, nextFree)
		}

		if entry.Size.Remaining {
			if index != len(t.Entries)-1 {
				return bosherr.Errorf("Only the last partition may fill the remaining space, not `%s'", entry.DeviceNode)
			}
			continue
		}

		nextFree = entry.Start + entry.Size.Sectors
	}

	return nil
}

// ExistingTableEntry is one partition as reported by `sfdisk -J`.
type ExistingTableEntry struct {
	Node     string      `json:"node"`
	Start    SectorCount `json:"start"`
	Size     SectorCount `json:"size"`
	Type     string      `json:"type"`
	Bootable bool        `json:"bootable"`
}

func (e ExistingTableEntry) End() SectorCount {
	return e.Start + e.Size
}

// Index is the trailing partition number of the device node.
func (e ExistingTableEntry) Index() (int, error) {
	digits := len(e.Node)
	for digits > 0 && e.Node[digits-1] >= '0' && e.Node[digits-1] <= '9' {
		digits--
	}

	if digits == len(e.Node) {
		return 0, bosherr.Errorf("Partition node `%s' does not end in a partition number", e.Node)
	}

	return strconv.Atoi(e.Node[digits:])
}

type ExistingTable struct {
	Label      string
	Device     string
	Partitions []ExistingTableEntry
}

// HasPartitions is false both when the disk carries no table and when
// sfdisk reported a table without any partitions; neither has anything to
// preserve.
func (t ExistingTable) HasPartitions() bool {
	return len(t.Partitions) > 0
}

// TopEntry returns the partition with the greatest start sector, the most
// recently allocated region of the disk.
func (t ExistingTable) TopEntry() (ExistingTableEntry, bool) {
	if !t.HasPartitions() {
		return ExistingTableEntry{}, false
	}

	top := t.Partitions[0]
	for _, entry := range t.Partitions[1:] {
		if entry.Start > top.Start {
			top = entry
		}
	}

	return top, true
}

// NextPartitionEntry derives the entry appended after the top partition of
// an existing table.
func NextPartitionEntry(existing ExistingTable, disk DiskChoice, size PartitionSize, firmware FirmwareMode) (PartitionTableEntry, int, error) {
	top, found := existing.TopEntry()
	if !found {
		return PartitionTableEntry{}, 0, bosherr.Errorf("Partition table of `%s' has no partitions to extend", disk.DevicePath())
	}

	topIndex, err := top.Index()
	if err != nil {
		return PartitionTableEntry{}, 0, bosherr.WrapError(err, "Finding the top partition number")
	}

	nextIndex := topIndex + 1
	entry := PartitionTableEntry{
		DeviceNode: PartitionDevicePath(disk.NumberingPrefix(), nextIndex),
		Start:      top.End(),
		Size:       size,
		Type:       linuxPartitionType(firmware),
	}

	for _, partition := range existing.Partitions {
		if extendedPartitionTypes[strings.ToLower(partition.Type)] {
			continue
		}

		if entry.Start < partition.End() {
			return PartitionTableEntry{}, 0, bosherr.Errorf(
				"New partition at sector %d would overlap `%s' ending at sector %d",
				entry.Start, partition.Node, partition.End())
		}
	}

	return entry, nextIndex, nil
}

// AppendPartitionEntry adds the entry to a verbatim `sfdisk -d` dump.
func AppendPartitionEntry(dump string, entry PartitionTableEntry) string {
	if dump != "" && !strings.HasSuffix(dump, "\n") {
		dump += "\n"
	}
	return dump + entry.String() + "\n"
}
