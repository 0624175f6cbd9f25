package app_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/miniarch/partition-planner/app"
)

var _ = Describe("NewCommand", func() {
	var (
		parsed Options
		runs   int
	)

	run := func(opts Options) error {
		parsed = opts
		runs++
		return nil
	}

	BeforeEach(func() {
		parsed = Options{}
		runs = 0
	})

	It("parses every flag", func() {
		command := NewCommand(run)
		command.SetArgs([]string{
			"-C", "/etc/partition-planner.yml",
			"--uefi",
			"--handoff-path", "/tmp/vars.sh",
			"--log-level", "debug",
			"--dry-run",
			"--disk", "sda",
			"--size", "all",
		})

		Expect(command.Execute()).To(Succeed())
		Expect(runs).To(Equal(1))
		Expect(parsed).To(Equal(Options{
			ConfigPath:  "/etc/partition-planner.yml",
			UEFI:        true,
			HandoffPath: "/tmp/vars.sh",
			LogLevel:    "debug",
			DryRun:      true,
			Disk:        "sda",
			Size:        "all",
		}))
	})

	It("runs with no flags", func() {
		command := NewCommand(run)
		command.SetArgs([]string{})

		Expect(command.Execute()).To(Succeed())
		Expect(parsed).To(Equal(Options{}))
	})

	It("rejects --uefi together with --bios", func() {
		command := NewCommand(run)
		command.SetArgs([]string{"--uefi", "--bios"})

		Expect(command.Execute()).To(MatchError("Only one of --uefi and --bios may be given"))
		Expect(runs).To(Equal(0))
	})

	It("rejects positional arguments", func() {
		command := NewCommand(run)
		command.SetArgs([]string{"sda"})

		Expect(command.Execute()).ToNot(Succeed())
		Expect(runs).To(Equal(0))
	})
})

var _ = Describe("Options", func() {
	Describe("ApplyTo", func() {
		var config Config

		BeforeEach(func() {
			config = Config{
				UEFIEnabled: "true",
				LogLevel:    "INFO",
				Handoff:     HandoffConfig{Path: "activate_installation_variables.sh", Format: "shell"},
			}
		})

		It("leaves the config alone without flags", func() {
			Options{}.ApplyTo(&config)
			Expect(config.UEFIEnabled).To(Equal("true"))
			Expect(config.LogLevel).To(Equal("INFO"))
			Expect(config.Handoff.Path).To(Equal("activate_installation_variables.sh"))
		})

		It("overrides the firmware mode", func() {
			Options{BIOS: true}.ApplyTo(&config)
			Expect(config.UEFIEnabled).To(Equal("false"))

			Options{UEFI: true}.ApplyTo(&config)
			Expect(config.UEFIEnabled).To(Equal("true"))
		})

		It("overrides the log level and handoff path", func() {
			Options{LogLevel: "DEBUG", HandoffPath: "/tmp/vars.sh"}.ApplyTo(&config)
			Expect(config.LogLevel).To(Equal("DEBUG"))
			Expect(config.Handoff.Path).To(Equal("/tmp/vars.sh"))
			Expect(config.Handoff.Format).To(Equal("shell"))
		})
	})
})
