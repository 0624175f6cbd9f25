package disk_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/miniarch/partition-planner/platform/disk"
)

const freshUEFITable = `label: gpt
device: /dev/sda
unit: sectors
first-lba: 2048
sector-size: 512

/dev/sda1 : start=        2048, size=     1048576, type=C12A7328-F81F-11D2-BA4B-00A0C93EC93B
/dev/sda2 : start=     1050624, size=    41943040, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4
`

const freshBIOSTable = `label: dos
device: /dev/sda
unit: sectors
sector-size: 512

/dev/sda1 : start=        2048, size=     1048576, type=83, bootable
/dev/sda2 : start=     1050624, type=83
`

var _ = Describe("PartitionTable", func() {
	sda := DiskChoice{Label: "sda", FreeSpace: HumanSize{Magnitude: 399, Unit: UnitGigabyte}}

	Describe("NewFreshPartitionTable", func() {
		It("lays out a GPT table with an EFI system partition for UEFI", func() {
			table := NewFreshPartitionTable(sda, SizeInSectors(ToSectors(20, UnitGigabyte)), FirmwareUEFI)

			Expect(table.Validate()).To(Succeed())
			Expect(table.String()).To(Equal(freshUEFITable))
		})

		It("lays out a dos table with a bootable first partition for BIOS", func() {
			table := NewFreshPartitionTable(sda, RemainingSpace(), FirmwareBIOS)

			Expect(table.Validate()).To(Succeed())
			Expect(table.String()).To(Equal(freshBIOSTable))
		})

		It("numbers partitions of nvme disks with a 'p'", func() {
			table := NewFreshPartitionTable(DiskChoice{Label: "nvme0n1"}, RemainingSpace(), FirmwareUEFI)

			Expect(table.Entries[0].DeviceNode).To(Equal("/dev/nvme0n1p1"))
			Expect(table.Entries[1].DeviceNode).To(Equal("/dev/nvme0n1p2"))
			Expect(table.String()).To(ContainSubstring("device: /dev/nvme0n1\n"))
		})
	})

	Describe("Validate", func() {
		It("rejects overlapping entries", func() {
			table := PartitionTable{Entries: []PartitionTableEntry{
				{DeviceNode: "/dev/sda1", Start: 2048, Size: SizeInSectors(4096)},
				{DeviceNode: "/dev/sda2", Start: 4096, Size: SizeInSectors(4096)},
			}}

			Expect(table.Validate()).To(MatchError(ContainSubstring("`/dev/sda2' starts at sector 4096")))
		})

		It("only lets the last entry take the remaining space", func() {
			table := PartitionTable{Entries: []PartitionTableEntry{
				{DeviceNode: "/dev/sda1", Start: 2048, Size: RemainingSpace()},
				{DeviceNode: "/dev/sda2", Start: 8192, Size: SizeInSectors(4096)},
			}}

			Expect(table.Validate()).To(MatchError(ContainSubstring("not `/dev/sda1'")))
		})
	})

	Describe("ExistingTableEntry", func() {
		It("reads every trailing digit of the node", func() {
			Expect(ExistingTableEntry{Node: "/dev/sda12"}.Index()).To(Equal(12))
			Expect(ExistingTableEntry{Node: "/dev/nvme0n1p3"}.Index()).To(Equal(3))
		})

		It("fails for nodes without a number", func() {
			_, err := ExistingTableEntry{Node: "/dev/sda"}.Index()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("NextPartitionEntry", func() {
		existing := ExistingTable{
			Label:  "dos",
			Device: "/dev/sda",
			Partitions: []ExistingTableEntry{
				{Node: "/dev/sda1", Start: 2048, Size: 1048576, Type: "83", Bootable: true},
				{Node: "/dev/sda3", Start: 5000000, Size: 2000000, Type: "83"},
				{Node: "/dev/sda2", Start: 1050624, Size: 3000000, Type: "82"},
			},
		}

		It("follows the partition with the greatest start", func() {
			entry, index, err := NextPartitionEntry(existing, sda, RemainingSpace(), FirmwareBIOS)
			Expect(err).ToNot(HaveOccurred())
			Expect(index).To(Equal(4))
			Expect(entry).To(Equal(PartitionTableEntry{
				DeviceNode: "/dev/sda4",
				Start:      7000000,
				Size:       RemainingSpace(),
				Type:       MBRLinuxType,
			}))
		})

		It("uses the GPT linux type for UEFI", func() {
			entry, _, err := NextPartitionEntry(existing, sda, SizeInSectors(1000), FirmwareUEFI)
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Type).To(Equal(LinuxFilesystemType))
			Expect(entry.String()).To(Equal("/dev/sda4 : start=     7000000, size=        1000, type=0FC63DAF-8483-4772-8E79-3D69D8477DE4"))
		})

		It("ignores extended partitions spanning the disk", func() {
			withExtended := ExistingTable{Partitions: []ExistingTableEntry{
				{Node: "/dev/sda1", Start: 2048, Size: 100000, Type: "f"},
				{Node: "/dev/sda5", Start: 4096, Size: 8192, Type: "83"},
			}}

			entry, index, err := NextPartitionEntry(withExtended, sda, RemainingSpace(), FirmwareBIOS)
			Expect(err).ToNot(HaveOccurred())
			Expect(index).To(Equal(6))
			Expect(entry.Start).To(Equal(SectorCount(12288)))
		})

		It("refuses to overlap another partition", func() {
			overlapping := ExistingTable{Partitions: []ExistingTableEntry{
				{Node: "/dev/sda1", Start: 2048, Size: 100000, Type: "83"},
				{Node: "/dev/sda2", Start: 4096, Size: 8192, Type: "83"},
			}}

			_, _, err := NextPartitionEntry(overlapping, sda, RemainingSpace(), FirmwareBIOS)
			Expect(err).To(MatchError(ContainSubstring("would overlap `/dev/sda1'")))
		})

		It("fails without partitions", func() {
			_, _, err := NextPartitionEntry(ExistingTable{}, sda, RemainingSpace(), FirmwareBIOS)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("AppendPartitionEntry", func() {
		entry := PartitionTableEntry{DeviceNode: "/dev/sda3", Start: 4096, Size: RemainingSpace(), Type: "83"}

		It("adds the entry as the last line", func() {
			Expect(AppendPartitionEntry("label: dos\n", entry)).
				To(Equal("label: dos\n/dev/sda3 : start=        4096, type=83\n"))
		})

		It("terminates a dump missing its final newline", func() {
			Expect(AppendPartitionEntry("label: dos", entry)).
				To(Equal("label: dos\n/dev/sda3 : start=        4096, type=83\n"))
		})
	})
})
