package disk

import (
	"fmt"
	"strconv"
	"strings"
)

const MinimumPartitionSizeInGigabytes = 8

type DiskChoice struct {
	Label     string
	FreeSpace HumanSize
}

func (c DiskChoice) DevicePath() string {
	return "/dev/" + c.Label
}

func (c DiskChoice) NumberingPrefix() string {
	return NumberingPrefix(c.Label)
}

// PartitionSize is either a concrete number of sectors or the remainder
// of the disk, which is left for sfdisk to resolve.
type PartitionSize struct {
	Sectors   SectorCount
	Remaining bool
}

func RemainingSpace() PartitionSize {
	return PartitionSize{Remaining: true}
}

func SizeInSectors(sectors SectorCount) PartitionSize {
	return PartitionSize{Sectors: sectors}
}

func (s PartitionSize) String() string {
	if s.Remaining {
		return "remaining space"
	}
	return fmt.Sprintf("%d sectors", s.Sectors)
}

func HasMinimumFreeSpace(freeSpace HumanSize) bool {
	switch freeSpace.Unit {
	case UnitMegabyte:
		return false
	case UnitGigabyte:
		return freeSpace.Magnitude >= MinimumPartitionSizeInGigabytes
	default:
		return true
	}
}

func EligibleDisks(freeSpace FreeSpaceMap) ([]DiskChoice, error) {
	var choices []DiskChoice

	for _, label := range freeSpace.Labels() {
		if HasMinimumFreeSpace(freeSpace[label]) {
			choices = append(choices, DiskChoice{Label: label, FreeSpace: freeSpace[label]})
		}
	}

	if len(choices) == 0 {
		return nil, NoSuitableDiskError{MinimumSizeInGigabytes: MinimumPartitionSizeInGigabytes}
	}

	return choices, nil
}

func FindDiskChoice(choices []DiskChoice, label string) (DiskChoice, bool) {
	for _, choice := range choices {
		if choice.Label == label {
			return choice, true
		}
	}
	return DiskChoice{}, false
}

// NumberingPrefix returns the device name partitions are numbered from.
// Disks whose name ends in a digit (nvme0n1, mmcblk0) use a 'p' separator.
func NumberingPrefix(label string) string {
	if label == "" {
		return label
	}

	last := label[len(label)-1]
	if last >= '0' && last <= '9' {
		return label + "p"
	}
	return label
}

func PartitionDevicePath(numberingPrefix string, index int) string {
	return fmt.Sprintf("/dev/%s%d", numberingPrefix, index)
}

// ParsePartitionSizeInput validates a size in gigabytes typed by the user.
// Blank input selects the remaining space of the disk.
func ParsePartitionSizeInput(input string, freeSpace HumanSize) (PartitionSize, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return RemainingSpace(), nil
	}

	for _, char := range input {
		if char < '0' || char > '9' {
			return PartitionSize{}, PartitionSizeNotIntegerError{Input: input}
		}
	}

	freeInGigabytes := ToGigabytes(freeSpace.Sectors())
	outOfRange := PartitionSizeOutOfRangeError{
		MinimumInGigabytes: MinimumPartitionSizeInGigabytes,
		FreeInGigabytes:    freeInGigabytes,
	}

	gigabytes, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return PartitionSize{}, outOfRange
	}
	outOfRange.RequestedInGigabytes = gigabytes

	if gigabytes >= freeInGigabytes || gigabytes < MinimumPartitionSizeInGigabytes {
		return PartitionSize{}, outOfRange
	}

	return SizeInSectors(ToSectors(gigabytes, UnitGigabyte)), nil
}
