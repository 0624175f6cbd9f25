package app_test

import (
	"bytes"
	"errors"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	. "github.com/miniarch/partition-planner/app"
	"github.com/miniarch/partition-planner/app/appfakes"
	boshdisk "github.com/miniarch/partition-planner/platform/disk"
)

const appLsblkOutput = `NAME   MAJ:MIN RM  SIZE RO TYPE MOUNTPOINTS
sda      8:0    0  500G  0 disk
├─sda1   8:1    0  512M  0 part
└─sda2   8:2    0  100G  0 part
sdb      8:16   0    4G  0 disk
`

const appSfdiskJSON = `{
   "partitiontable": {
      "label": "dos",
      "device": "/dev/sda",
      "unit": "sectors",
      "partitions": [
         {"node": "/dev/sda1", "start": 2048, "size": 1048576, "type": "83", "bootable": true},
         {"node": "/dev/sda2", "start": 1050624, "size": 209715200, "type": "83"}
      ]
   }
}`

const appSfdiskDump = `label: dos
device: /dev/sda
unit: sectors
sector-size: 512

/dev/sda1 : start=        2048, size=     1048576, type=83, bootable
/dev/sda2 : start=     1050624, size=   209715200, type=83
`

const appPartedJSON = `{"disk": {"path": "/dev/sda", "partitions": [{"number": 1, "flags": ["boot"]}, {"number": 2}]}}`

var _ = Describe("App", func() {
	var (
		runner   *fakesys.FakeCmdRunner
		fs       *fakesys.FakeFileSystem
		out      *bytes.Buffer
		prompter *appfakes.FakePrompter
		prompts  int
		opts     Options
		config   Config
		app      App
	)

	sda := boshdisk.DiskChoice{Label: "sda", FreeSpace: boshdisk.HumanSize{Magnitude: 399, Unit: boshdisk.UnitGigabyte}}

	BeforeEach(func() {
		runner = fakesys.NewFakeCmdRunner()
		fs = fakesys.NewFakeFileSystem()
		out = &bytes.Buffer{}
		prompter = &appfakes.FakePrompter{}
		prompts = 0

		opts = Options{}
		config = Config{
			UEFIEnabled: "true",
			LogLevel:    "NONE",
			Handoff:     HandoffConfig{Path: "/tmp/vars.sh", Format: "shell"},
		}

		runner.AddCmdResult("lsblk", fakesys.FakeCmdResult{Stdout: appLsblkOutput})

		app = New(boshlog.NewLogger(boshlog.LevelNone), fs, runner, out, func() (Prompter, error) {
			prompts++
			return prompter, nil
		})
	})

	run := func() error {
		err := app.Setup(opts, config)
		Expect(err).ToNot(HaveOccurred())
		return app.Run()
	}

	Context("when the chosen disk has no partition table", func() {
		BeforeEach(func() {
			runner.AddCmdResult("sfdisk -J /dev/sda", fakesys.FakeCmdResult{
				Stderr:     "sfdisk: /dev/sda: does not contain a recognized partition table",
				ExitStatus: 1,
				Error:      errors.New("fake-sfdisk-err"),
			})
		})

		It("asks for the disk and size, writes a fresh table and hands off its partitions", func() {
			prompter.PromptReturnsOnCall(0, "sda", nil)
			prompter.PromptReturnsOnCall(1, "", nil)

			Expect(run()).To(Succeed())

			expectedTable := boshdisk.NewFreshPartitionTable(sda, boshdisk.RemainingSpace(), boshdisk.FirmwareUEFI).String()
			Expect(runner.RunCommandsWithInput).To(Equal([][]string{{expectedTable, "sfdisk", "/dev/sda"}}))

			Expect(fs.ReadFileString("/tmp/vars.sh")).To(Equal(
				"\nboot_partition=\"/dev/sda1\"\nexisting_boot_partition=False\nroot_partition=\"/dev/sda2\""))

			Expect(prompts).To(Equal(1))
			Expect(prompter.CloseCallCount()).To(Equal(1))
			Expect(runner.RunCommands).ToNot(ContainElement([]string{"parted", "-j", "/dev/sda", "print"}))
		})

		It("only prints the table on a dry run", func() {
			opts = Options{DryRun: true, Disk: "sda", Size: "20"}

			Expect(run()).To(Succeed())

			expectedTable := boshdisk.NewFreshPartitionTable(
				sda, boshdisk.SizeInSectors(boshdisk.ToSectors(20, boshdisk.UnitGigabyte)), boshdisk.FirmwareUEFI).String()
			Expect(out.String()).To(Equal(expectedTable))

			Expect(runner.RunCommandsWithInput).To(BeEmpty())
			Expect(fs.FileExists("/tmp/vars.sh")).To(BeFalse())
			Expect(prompts).To(Equal(0))
		})

		It("returns an error when sfdisk fails to write", func() {
			opts = Options{Disk: "sda", Size: "all"}
			config.UEFIEnabled = "false"

			expectedTable := boshdisk.NewFreshPartitionTable(sda, boshdisk.RemainingSpace(), boshdisk.FirmwareBIOS).String()
			runner.AddCmdResult(expectedTable+" sfdisk /dev/sda", fakesys.FakeCmdResult{Error: errors.New("fake-commit-err")})

			err := run()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Committing partition table"))
			Expect(err.Error()).To(ContainSubstring("fake-commit-err"))
			Expect(fs.FileExists("/tmp/vars.sh")).To(BeFalse())
		})

		It("returns an error when the handoff cannot be written", func() {
			opts = Options{Disk: "sda", Size: "all"}
			fs.OpenFileErr = errors.New("fake-open-err")

			err := run()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Handing off installation variables"))
		})
	})

	Context("when the chosen disk already has partitions", func() {
		BeforeEach(func() {
			opts = Options{Disk: "sda", Size: "20"}
			config.UEFIEnabled = "false"

			runner.AddCmdResult("sfdisk -J /dev/sda", fakesys.FakeCmdResult{Stdout: appSfdiskJSON})
			runner.AddCmdResult("sfdisk -d /dev/sda", fakesys.FakeCmdResult{Stdout: appSfdiskDump})
		})

		It("appends a partition and hands off the existing boot partition", func() {
			runner.AddCmdResult("parted -j /dev/sda print", fakesys.FakeCmdResult{Stdout: appPartedJSON})

			Expect(run()).To(Succeed())

			Expect(runner.RunCommandsWithInput).To(Equal([][]string{{
				appSfdiskDump + "/dev/sda3 : start=   210765824, size=    41943040, type=83\n",
				"sfdisk", "/dev/sda",
			}}))

			Expect(fs.ReadFileString("/tmp/vars.sh")).To(Equal(
				"\nboot_partition=\"/dev/sda1\"\nexisting_boot_partition=True\nroot_partition=\"/dev/sda3\""))

			Expect(prompts).To(Equal(0))
		})

		It("logs the numbers of the new and boot partitions", func() {
			logBuffer := gbytes.NewBuffer()
			app = New(boshlog.NewWriterLogger(boshlog.LevelInfo, logBuffer), fs, runner, out, func() (Prompter, error) {
				return prompter, nil
			})
			runner.AddCmdResult("parted -j /dev/sda print", fakesys.FakeCmdResult{Stdout: appPartedJSON})

			Expect(run()).To(Succeed())
			Expect(logBuffer).To(gbytes.Say(`Created partition 3 \(/dev/sda3\), boot partition 1 \(/dev/sda1\)`))
		})

		It("falls back to the first partition when no boot flag is found", func() {
			runner.AddCmdResult("parted -j /dev/sda print", fakesys.FakeCmdResult{Error: errors.New("fake-parted-err")})

			Expect(run()).To(Succeed())

			Expect(fs.ReadFileString("/tmp/vars.sh")).To(ContainSubstring("existing_boot_partition=False"))
		})
	})

	It("returns an error when no disk has enough free space", func() {
		runner = fakesys.NewFakeCmdRunner()
		runner.AddCmdResult("lsblk", fakesys.FakeCmdResult{Stdout: "NAME MAJ:MIN RM SIZE RO TYPE\nsdb 8:16 0 4G 0 disk\n"})
		app = New(boshlog.NewLogger(boshlog.LevelNone), fs, runner, out, func() (Prompter, error) {
			return prompter, nil
		})

		err := run()
		Expect(err).To(Equal(boshdisk.NoSuitableDiskError{MinimumSizeInGigabytes: 8}))
		Expect(prompter.PromptCallCount()).To(Equal(0))
	})

	It("returns an error for a disk that is not eligible", func() {
		opts = Options{Disk: "sdb", Size: "all"}

		err := run()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Disk `sdb' is not eligible for installation"))
		Expect(runner.RunCommandsWithInput).To(BeEmpty())
	})

	It("returns an error when the prompter cannot be opened", func() {
		app = New(boshlog.NewLogger(boshlog.LevelNone), fs, runner, out, func() (Prompter, error) {
			return nil, errors.New("fake-tty-err")
		})

		err := run()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("fake-tty-err"))
	})

	Describe("Setup", func() {
		It("requires a firmware mode", func() {
			config.UEFIEnabled = ""

			err := app.Setup(opts, config)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Getting firmware mode"))
		})

		It("rejects unknown handoff formats", func() {
			config.Handoff.Format = "xml"

			err := app.Setup(opts, config)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Unknown handoff format `xml'"))
		})
	})
})
