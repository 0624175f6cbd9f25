package disk

import "fmt"

type InvalidSizeFormatError struct {
	Size string
}

func (e InvalidSizeFormatError) Error() string {
	return fmt.Sprintf("Invalid size `%s': expected a number followed by M, G or T", e.Size)
}

type NoSuitableDiskError struct {
	MinimumSizeInGigabytes uint64
}

func (e NoSuitableDiskError) Error() string {
	return fmt.Sprintf("None of the disks have at least %dG of free space for installation", e.MinimumSizeInGigabytes)
}

type TableProbeFailedError struct {
	DevicePath string
	Cause      error
}

func (e TableProbeFailedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("Probing partition table of `%s'", e.DevicePath)
	}
	return fmt.Sprintf("Probing partition table of `%s': %s", e.DevicePath, e.Cause.Error())
}

func (e TableProbeFailedError) Unwrap() error {
	return e.Cause
}

type CommitFailedError struct {
	DevicePath string
	Cause      error
}

func (e CommitFailedError) Error() string {
	return fmt.Sprintf("Writing partition table to `%s': %s", e.DevicePath, e.Cause.Error())
}

func (e CommitFailedError) Unwrap() error {
	return e.Cause
}

type PartitionSizeNotIntegerError struct {
	Input string
}

func (e PartitionSizeNotIntegerError) Error() string {
	return "Must be an integer, no characters or decimals!"
}

type PartitionSizeOutOfRangeError struct {
	RequestedInGigabytes uint64
	MinimumInGigabytes   uint64
	FreeInGigabytes      uint64
}

func (e PartitionSizeOutOfRangeError) Error() string {
	return fmt.Sprintf(
		"Must be an integer less than %d Gigabytes, and greater than %d Gigabytes.",
		e.FreeInGigabytes, e.MinimumInGigabytes-1,
	)
}
