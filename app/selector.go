package app

import (
	"fmt"
	"io"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	boshdisk "github.com/miniarch/partition-planner/platform/disk"
)

const (
	diskQuestion = "Type the name of the disk to install on: "
	sizeQuestion = "Root partition size in Gigabytes (leave blank to fill remaining disk space): "

	remainingSpaceOption = "all"
)

// Selector asks until it gets a listed disk and a valid size.
type Selector struct {
	prompter Prompter
	out      io.Writer
	errColor *color.Color
}

func NewSelector(prompter Prompter, out io.Writer) Selector {
	return Selector{
		prompter: prompter,
		out:      out,
		errColor: color.New(color.FgRed, color.Bold),
	}
}

func (s Selector) ChooseDisk(choices []boshdisk.DiskChoice) (boshdisk.DiskChoice, error) {
	for {
		s.printChoices(choices)

		answer, err := s.prompter.Prompt(diskQuestion)
		if err != nil {
			return boshdisk.DiskChoice{}, err
		}

		choice, found := boshdisk.FindDiskChoice(choices, strings.TrimSpace(answer))
		if found {
			return choice, nil
		}

		s.printError("That disk isn't in the list!")
	}
}

func (s Selector) ChoosePartitionSize(disk boshdisk.DiskChoice) (boshdisk.PartitionSize, error) {
	for {
		answer, err := s.prompter.Prompt(sizeQuestion)
		if err != nil {
			return boshdisk.PartitionSize{}, err
		}

		size, err := boshdisk.ParsePartitionSizeInput(answer, disk.FreeSpace)
		if err == nil {
			return size, nil
		}

		s.printError(err.Error())
	}
}

func (s Selector) printChoices(choices []boshdisk.DiskChoice) {
	fmt.Fprintln(s.out)

	table := tablewriter.NewWriter(s.out)
	table.SetHeader([]string{"Name", "Free Space"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	for _, choice := range choices {
		table.Append([]string{choice.Label, choice.FreeSpace.String()})
	}

	table.Render()
	fmt.Fprintln(s.out)
}

func (s Selector) printError(message string) {
	s.errColor.Fprintf(s.out, "\n ** Error: %s ** \n\n", message) //nolint:errcheck
}

// SelectDisk applies --disk. An unknown label is fatal since there is
// nobody to ask again.
func SelectDisk(choices []boshdisk.DiskChoice, label string) (boshdisk.DiskChoice, error) {
	choice, found := boshdisk.FindDiskChoice(choices, label)
	if !found {
		return boshdisk.DiskChoice{}, bosherr.Errorf("Disk `%s' is not eligible for installation", label)
	}
	return choice, nil
}

// SelectPartitionSize applies --size, where 'all' takes the remaining space.
func SelectPartitionSize(disk boshdisk.DiskChoice, size string) (boshdisk.PartitionSize, error) {
	input := size
	if strings.EqualFold(size, remainingSpaceOption) {
		input = ""
	}

	partitionSize, err := boshdisk.ParsePartitionSizeInput(input, disk.FreeSpace)
	if err != nil {
		return boshdisk.PartitionSize{}, bosherr.WrapErrorf(err, "Validating size `%s'", size)
	}

	return partitionSize, nil
}
