package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const (
	HandoffFormatShell = "shell"
	HandoffFormatJSON  = "json"

	DefaultHandoffPath = "activate_installation_variables.sh"
)

// Handoff is what later installation stages need to mount the boot
// partition and install onto the new partition.
type Handoff struct {
	BootPartitionPath       string `json:"boot_partition"`
	BootPartitionPreexisted bool   `json:"existing_boot_partition"`
	NewPartitionPath        string `json:"root_partition"`
}

// ShellVariables renders the handoff as lines sourced by the installer's
// shell scripts.
func (h Handoff) ShellVariables() string {
	return fmt.Sprintf(
		"\nboot_partition=%s\nexisting_boot_partition=%s\nroot_partition=%s",
		strconv.Quote(h.BootPartitionPath),
		capitalizedBool(h.BootPartitionPreexisted),
		strconv.Quote(h.NewPartitionPath),
	)
}

// The installer scripts compare against True/False.
func capitalizedBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

type HandoffWriter interface {
	Write(handoff Handoff) error
}

type fileHandoffWriter struct {
	fs     boshsys.FileSystem
	path   string
	format string
	logger boshlog.Logger
	logTag string
}

func NewHandoffWriter(fs boshsys.FileSystem, path, format string, logger boshlog.Logger) (HandoffWriter, error) {
	if path == "" {
		path = DefaultHandoffPath
	}

	format = strings.ToLower(format)
	switch format {
	case "":
		format = HandoffFormatShell
	case HandoffFormatShell, HandoffFormatJSON:
	default:
		return nil, bosherr.Errorf("Unknown handoff format `%s'", format)
	}

	return fileHandoffWriter{
		fs:     fs,
		path:   path,
		format: format,
		logger: logger,
		logTag: "HandoffWriter",
	}, nil
}

func (w fileHandoffWriter) Write(handoff Handoff) error {
	if w.format == HandoffFormatJSON {
		return w.writeJSON(handoff)
	}
	return w.appendShell(handoff)
}

func (w fileHandoffWriter) appendShell(handoff Handoff) error {
	file, err := w.fs.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return bosherr.WrapErrorf(err, "Opening installation variables file `%s'", w.path)
	}

	_, err = file.Write([]byte(handoff.ShellVariables()))
	if err != nil {
		file.Close() //nolint:errcheck
		return bosherr.WrapErrorf(err, "Writing installation variables to `%s'", w.path)
	}

	err = file.Close()
	if err != nil {
		return bosherr.WrapErrorf(err, "Closing installation variables file `%s'", w.path)
	}

	w.logger.Debug(w.logTag, "Appended installation variables to %s", w.path)
	return nil
}

func (w fileHandoffWriter) writeJSON(handoff Handoff) error {
	handoffJSON, err := json.Marshal(handoff)
	if err != nil {
		return bosherr.WrapError(err, "Marshalling installation variables")
	}

	err = w.fs.WriteFile(w.path, handoffJSON)
	if err != nil {
		return bosherr.WrapErrorf(err, "Writing installation variables to `%s'", w.path)
	}

	w.logger.Debug(w.logTag, "Wrote installation variables to %s", w.path)
	return nil
}
