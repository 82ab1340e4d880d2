// Package config loads gedcomkit settings from defaults, an optional YAML
// file and GEDCOMKIT_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/gedcom"
	"github.com/FocuswithJustin/gedcomkit/core/validate"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
)

// Environment variables read by Load.
const (
	EnvConfig         = "GEDCOMKIT_CONFIG"
	EnvLogLevel       = "GEDCOMKIT_LOG_LEVEL"
	EnvLogFormat      = "GEDCOMKIT_LOG_FORMAT"
	EnvAutoRepair     = "GEDCOMKIT_AUTO_REPAIR"
	EnvValidateWrite  = "GEDCOMKIT_VALIDATE"
	EnvLineTerminator = "GEDCOMKIT_LINE_TERMINATOR"
	EnvDatabase       = "GEDCOMKIT_DB"
	EnvMetricsFile    = "GEDCOMKIT_METRICS_FILE"
)

// Auto-repair policy names.
const (
	RepairNone     = "none"
	RepairAll      = "all"
	RepairErrors   = "errors"
	RepairWarnings = "warnings"
)

// Config holds every setting of the CLI.
type Config struct {
	LogLevel            string `yaml:"log_level"`
	LogFormat           string `yaml:"log_format"`
	AutoRepair          string `yaml:"auto_repair"`
	ValidateBeforeWrite bool   `yaml:"validate_before_write"`
	LineTerminator      string `yaml:"line_terminator"`
	DatabasePath        string `yaml:"database"`
	MetricsFile         string `yaml:"metrics_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "json",
		AutoRepair:     RepairNone,
		LineTerminator: "lf",
		DatabasePath:   "gedcomkit.db",
	}
}

// Load builds a Config from the defaults, the YAML file at path (or the
// file named by GEDCOMKIT_CONFIG when path is empty) and the environment.
// A missing explicit file is an error; no file at all is not.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.NewIO("read config", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &errors.ParseError{Format: "YAML", Path: path, Message: "invalid config file", Err: err}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvLogLevel, &c.LogLevel},
		{EnvLogFormat, &c.LogFormat},
		{EnvAutoRepair, &c.AutoRepair},
		{EnvLineTerminator, &c.LineTerminator},
		{EnvDatabase, &c.DatabasePath},
		{EnvMetricsFile, &c.MetricsFile},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}
	if v, ok := lookup(EnvValidateWrite); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.NewValidation(EnvValidateWrite, fmt.Sprintf("not a boolean: %q", v))
		}
		c.ValidateBeforeWrite = b
	}
	return nil
}

// Validate rejects unknown enumeration values.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return asField(err, "log_level")
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return asField(err, "log_format")
	}
	if _, err := ParseResponder(c.AutoRepair); err != nil {
		return err
	}
	if _, err := c.Terminator(); err != nil {
		return err
	}
	return nil
}

// Responder maps AutoRepair to a repair policy.
func (c *Config) Responder() (validate.AutoRepairResponder, error) {
	return ParseResponder(c.AutoRepair)
}

// ParseResponder maps a policy name to a repair policy. "errors" repairs
// ERROR findings only; "warnings" repairs WARNING and above.
func ParseResponder(name string) (validate.AutoRepairResponder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RepairNone:
		return validate.AutoRepairNone, nil
	case RepairAll:
		return validate.AutoRepairAll, nil
	case RepairErrors:
		return validate.RepairAtOrAbove(validate.SeverityError), nil
	case RepairWarnings:
		return validate.RepairAtOrAbove(validate.SeverityWarning), nil
	}
	return nil, errors.NewValidation("auto_repair",
		fmt.Sprintf("must be one of none, all, errors, warnings; got %q", name))
}

// Terminator returns the line terminator for gedcom.WithLineTerminator.
func (c *Config) Terminator() (string, error) {
	switch strings.ToLower(strings.TrimSpace(c.LineTerminator)) {
	case "", "lf":
		return gedcom.LF, nil
	case "crlf":
		return gedcom.CRLF, nil
	}
	return "", errors.NewValidation("line_terminator", fmt.Sprintf("must be lf or crlf; got %q", c.LineTerminator))
}

// InitLogging configures the process logger from LogLevel and LogFormat.
func (c *Config) InitLogging() error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return asField(err, "log_level")
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return asField(err, "log_format")
	}
	logging.InitLogger(level, format)
	return nil
}

// asField renames the field of a ValidationError to its config key.
func asField(err error, key string) error {
	var ve *errors.ValidationError
	if errors.As(err, &ve) {
		ve.Field = key
	}
	return err
}
