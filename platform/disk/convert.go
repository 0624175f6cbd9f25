package disk

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const SectorSizeInBytes = 512

// SectorCount is a number of 512 byte sectors.
type SectorCount uint64

type Unit int

const (
	UnitMegabyte Unit = iota
	UnitGigabyte
	UnitTerabyte
)

var unitSuffixes = map[string]Unit{
	"m": UnitMegabyte,
	"g": UnitGigabyte,
	"t": UnitTerabyte,
}

func (u Unit) Bytes() uint64 {
	switch u {
	case UnitGigabyte:
		return 1024 * 1024 * 1024
	case UnitTerabyte:
		return 1024 * 1024 * 1024 * 1024
	default:
		return 1024 * 1024
	}
}

func (u Unit) Suffix() string {
	switch u {
	case UnitGigabyte:
		return "G"
	case UnitTerabyte:
		return "T"
	default:
		return "M"
	}
}

// HumanSize is a truncated magnitude in the smallest unit that keeps it
// below 1000, terabytes being the largest unit used.
type HumanSize struct {
	Magnitude uint64
	Unit      Unit
}

func (h HumanSize) String() string {
	return fmt.Sprintf("%d%s", h.Magnitude, h.Unit.Suffix())
}

func (h HumanSize) Sectors() SectorCount {
	return ToSectors(h.Magnitude, h.Unit)
}

func ToSectors(magnitude uint64, unit Unit) SectorCount {
	return SectorCount(magnitude * (unit.Bytes() / SectorSizeInBytes))
}

func ConvertFromSectorsToUnit(sectors SectorCount, unit Unit) uint64 {
	return uint64(sectors) / (unit.Bytes() / SectorSizeInBytes)
}

func ToGigabytes(sectors SectorCount) uint64 {
	return ConvertFromSectorsToUnit(sectors, UnitGigabyte)
}

func ToHumanSize(sectors SectorCount) HumanSize {
	if megabytes := ConvertFromSectorsToUnit(sectors, UnitMegabyte); megabytes < 1000 {
		return HumanSize{Magnitude: megabytes, Unit: UnitMegabyte}
	}

	if gigabytes := ConvertFromSectorsToUnit(sectors, UnitGigabyte); gigabytes < 1000 {
		return HumanSize{Magnitude: gigabytes, Unit: UnitGigabyte}
	}

	return HumanSize{Magnitude: ConvertFromSectorsToUnit(sectors, UnitTerabyte), Unit: UnitTerabyte}
}

// ParseHumanSize reads sizes as printed by lsblk, e.g. '552M' or '1.5T'.
// Fractions are truncated.
func ParseHumanSize(size string) (HumanSize, error) {
	trimmed := strings.ToLower(strings.TrimSpace(size))
	if len(trimmed) < 2 {
		return HumanSize{}, InvalidSizeFormatError{Size: size}
	}

	unit, found := unitSuffixes[trimmed[len(trimmed)-1:]]
	if !found {
		return HumanSize{}, InvalidSizeFormatError{Size: size}
	}

	number := trimmed[:len(trimmed)-1]
	if strings.HasPrefix(number, "-") || strings.HasPrefix(number, "+") {
		return HumanSize{}, InvalidSizeFormatError{Size: size}
	}

	magnitude, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return HumanSize{}, InvalidSizeFormatError{Size: size}
	}

	if magnitude >= float64(math.MaxUint64/(unit.Bytes()/SectorSizeInBytes)) {
		return HumanSize{}, InvalidSizeFormatError{Size: size}
	}

	return HumanSize{Magnitude: uint64(magnitude), Unit: unit}, nil
}

func ParseSize(size string) (SectorCount, error) {
	humanSize, err := ParseHumanSize(size)
	if err != nil {
		return 0, err
	}

	return humanSize.Sectors(), nil
}
