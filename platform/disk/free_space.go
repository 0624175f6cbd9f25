package disk

import "sort"

// FreeSpaceMap maps disk labels to their unallocated space.
type FreeSpaceMap map[string]HumanSize

// Labels are returned sorted so listings are stable between runs.
func (m FreeSpaceMap) Labels() []string {
	labels := make([]string, 0, len(m))
	for label := range m {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func CalculateFreeSpaceInSectors(inventory Inventory) map[string]SectorCount {
	freeSpace := map[string]SectorCount{}

	for _, disk := range inventory.Disks() {
		remaining := disk.Size

		for _, partition := range inventory.PartitionsOf(disk) {
			if partition.Size >= remaining {
				remaining = 0
				continue
			}
			remaining -= partition.Size
		}

		freeSpace[disk.Label] = remaining
	}

	return freeSpace
}

func CalculateFreeSpace(inventory Inventory) FreeSpaceMap {
	freeSpace := FreeSpaceMap{}
	for label, sectors := range CalculateFreeSpaceInSectors(inventory) {
		freeSpace[label] = ToHumanSize(sectors)
	}
	return freeSpace
}
