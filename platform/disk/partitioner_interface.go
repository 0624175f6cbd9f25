package disk

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . BlockDeviceLister

type BlockDeviceLister interface {
	List() (Inventory, error)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . TableProber

type TableProber interface {
	// GetExistingTable returns TableProbeFailedError when sfdisk cannot
	// read a table from the device.
	GetExistingTable(devicePath string) (ExistingTable, error)
	DumpTable(devicePath string) (string, error)
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . TableCommitter

type TableCommitter interface {
	CommitTable(devicePath string, table string) error
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . BootPartitionLocator

type BootPartitionLocator interface {
	Locate(disk DiskChoice) BootPartition
}
