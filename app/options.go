package app

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Options struct {
	ConfigPath  string
	UEFI        bool
	BIOS        bool
	HandoffPath string
	LogLevel    string
	DryRun      bool
	Disk        string
	Size        string
}

func BindFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVarP(&opts.ConfigPath, "config", "C", "", "Path to a YAML config file")
	flags.BoolVar(&opts.UEFI, "uefi", false, "Write a GPT table for UEFI firmware")
	flags.BoolVar(&opts.BIOS, "bios", false, "Write a dos table for legacy BIOS firmware")
	flags.StringVar(&opts.HandoffPath, "handoff-path", "", "File receiving the installation variables")
	flags.StringVar(&opts.LogLevel, "log-level", "", "DEBUG, INFO, WARN, ERROR or NONE")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Print the partition table instead of writing it")
	flags.StringVar(&opts.Disk, "disk", "", "Disk to install on, e.g. sda (skips the prompt)")
	flags.StringVar(&opts.Size, "size", "", "Partition size in gigabytes, 'all' for the remaining space (skips the prompt)")
}

const AppName = "partition-planner"

// NewCommand builds the root command. run receives the parsed options.
func NewCommand(run func(opts Options) error) *cobra.Command {
	var opts Options

	command := &cobra.Command{
		Use:           AppName,
		Short:         AppName + " - plans and writes the installer's partition table",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(opts)
		},
	}

	BindFlags(command.Flags(), &opts)

	return command
}

func (o Options) Validate() error {
	if o.UEFI && o.BIOS {
		return bosherr.Error("Only one of --uefi and --bios may be given")
	}
	return nil
}

func (o Options) ApplyTo(config *Config) {
	if o.UEFI {
		config.UEFIEnabled = "true"
	}
	if o.BIOS {
		config.UEFIEnabled = "false"
	}
	if o.LogLevel != "" {
		config.LogLevel = o.LogLevel
	}
	if o.HandoffPath != "" {
		config.Handoff.Path = o.HandoffPath
	}
}
