package app

import (
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	boshdisk "github.com/miniarch/partition-planner/platform/disk"
	boshsettings "github.com/miniarch/partition-planner/settings"
)

const (
	uefiEnvVar     = "uefi_enabled"
	logLevelEnvVar = "PARTITION_PLANNER_LOG_LEVEL"
)

type HandoffConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

type Config struct {
	// UEFIEnabled holds 'true' or 'false' as exported by the installer.
	UEFIEnabled string        `mapstructure:"uefi_enabled"`
	LogLevel    string        `mapstructure:"log_level"`
	Handoff     HandoffConfig `mapstructure:"handoff"`
}

func defaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"log_level": "INFO",
		"handoff": map[string]interface{}{
			"path":   boshsettings.DefaultHandoffPath,
			"format": boshsettings.HandoffFormatShell,
		},
	}
}

// LoadConfig reads the optional YAML config at path and lays the
// installer's environment variables over it.
func LoadConfig(fs boshsys.FileSystem, path string, environ map[string]string) (Config, error) {
	var config Config

	raw := defaultConfig()

	if path != "" {
		bytes, err := fs.ReadFile(path)
		if err != nil {
			return config, bosherr.WrapError(err, "Reading file")
		}

		var fromFile map[string]interface{}
		if err = yaml.Unmarshal(bytes, &fromFile); err != nil {
			return config, bosherr.WrapError(err, "Loading file")
		}

		for key, value := range fromFile {
			if nested, ok := value.(map[string]interface{}); ok {
				if defaults, ok := raw[key].(map[string]interface{}); ok {
					for nestedKey, nestedValue := range nested {
						defaults[nestedKey] = nestedValue
					}
					continue
				}
			}
			raw[key] = value
		}
	}

	if value, found := environ[uefiEnvVar]; found {
		raw["uefi_enabled"] = value
	}

	// Weak decoding would turn a YAML boolean into "1" or "0".
	if value, ok := raw["uefi_enabled"].(bool); ok {
		raw["uefi_enabled"] = strconv.FormatBool(value)
	}
	if value, found := environ[logLevelEnvVar]; found && value != "" {
		raw["log_level"] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return config, bosherr.WrapError(err, "Building config decoder")
	}

	if err = decoder.Decode(raw); err != nil {
		return config, bosherr.WrapError(err, "Decoding config")
	}

	return config, nil
}

// FirmwareMode accepts only 'true' or 'false', case-insensitively, as
// exported by the installer.
func (c Config) FirmwareMode() (boshdisk.FirmwareMode, error) {
	if c.UEFIEnabled == "" {
		return boshdisk.FirmwareBIOS, bosherr.Errorf("Firmware mode is not set: export %s=true|false or pass --uefi/--bios", uefiEnvVar)
	}

	switch {
	case strings.EqualFold(c.UEFIEnabled, "true"):
		return boshdisk.FirmwareUEFI, nil
	case strings.EqualFold(c.UEFIEnabled, "false"):
		return boshdisk.FirmwareBIOS, nil
	default:
		return boshdisk.FirmwareBIOS, bosherr.Errorf("Invalid %s value `%s'", uefiEnvVar, c.UEFIEnabled)
	}
}

func EnvironToMap(environ []string) map[string]string {
	result := map[string]string{}
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if found {
			result[key] = value
		}
	}
	return result
}
