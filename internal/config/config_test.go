package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	gederrors "github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/gedcom"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/core/validate"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfig, EnvLogLevel, EnvLogFormat, EnvAutoRepair,
		EnvValidateWrite, EnvLineTerminator, EnvDatabase, EnvMetricsFile} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gedcomkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level: debug
log_format: text
auto_repair: errors
validate_before_write: true
line_terminator: crlf
database: file.db
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		want := Config{
			LogLevel:            "debug",
			LogFormat:           "text",
			AutoRepair:          "errors",
			ValidateBeforeWrite: true,
			LineTerminator:      "crlf",
			DatabasePath:        "file.db",
		}
		if *cfg != want {
			t.Errorf("Load() = %+v, want %+v", *cfg, want)
		}
	})

	t.Run("path from environment", func(t *testing.T) {
		t.Setenv(EnvConfig, path)
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DatabasePath != "file.db" {
			t.Errorf("DatabasePath = %q", cfg.DatabasePath)
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv(EnvDatabase, "env.db")
		t.Setenv(EnvAutoRepair, "all")
		t.Setenv(EnvValidateWrite, "false")
		t.Setenv(EnvMetricsFile, "/tmp/gedcom.prom")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DatabasePath != "env.db" || cfg.AutoRepair != "all" || cfg.ValidateBeforeWrite {
			t.Errorf("Load() = %+v", cfg)
		}
		if cfg.MetricsFile != "/tmp/gedcom.prom" || cfg.LogLevel != "debug" {
			t.Errorf("Load() = %+v", cfg)
		}
	})
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		var ioe *gederrors.IOError
		if !errors.As(err, &ioe) {
			t.Errorf("Load() error = %v, want IOError", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log_level: [unclosed"))
		var pe *gederrors.ParseError
		if !errors.As(err, &pe) || pe.Format != "YAML" {
			t.Errorf("Load() error = %v, want YAML ParseError", err)
		}
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv(EnvValidateWrite, "sometimes")
		_, err := Load("")
		if !errors.Is(err, gederrors.ErrInvalidInput) {
			t.Errorf("Load() error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		wantErr bool
	}{
		{"defaults", func(*Config) {}, "", false},
		{"warn level", func(c *Config) { c.LogLevel = "WARN" }, "", false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "log_level", true},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "log_format", true},
		{"bad repair", func(c *Config) { c.AutoRepair = "some" }, "auto_repair", true},
		{"bad terminator", func(c *Config) { c.LineTerminator = "cr" }, "line_terminator", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *gederrors.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Errorf("Validate() error = %v, want field %s", err, tt.field)
			}
		})
	}
}

// severityFinding returns a finding of the given severity recorded on a
// scratch graph.
func severityFinding(t *testing.T, s validate.Severity) *validate.Finding {
	t.Helper()
	v, err := validate.New(model.NewGedcom())
	if err != nil {
		t.Fatal(err)
	}
	f, err := v.NewFinding(v.Gedcom(), s, validate.MissingRequiredValue, "trailer")
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestParseResponder(t *testing.T) {
	tests := []struct {
		name        string
		wantInfo    bool
		wantWarning bool
		wantError   bool
	}{
		{"", false, false, false},
		{"none", false, false, false},
		{"ALL", true, true, true},
		{"errors", false, false, true},
		{"warnings", false, true, true},
	}

	info := severityFinding(t, validate.SeverityInfo)
	warning := severityFinding(t, validate.SeverityWarning)
	errFinding := severityFinding(t, validate.SeverityError)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseResponder(tt.name)
			if err != nil {
				t.Fatalf("ParseResponder() error = %v", err)
			}
			if got := r.MayRepair(info); got != tt.wantInfo {
				t.Errorf("MayRepair(INFO) = %v, want %v", got, tt.wantInfo)
			}
			if got := r.MayRepair(warning); got != tt.wantWarning {
				t.Errorf("MayRepair(WARNING) = %v, want %v", got, tt.wantWarning)
			}
			if got := r.MayRepair(errFinding); got != tt.wantError {
				t.Errorf("MayRepair(ERROR) = %v, want %v", got, tt.wantError)
			}
		})
	}
}

func TestTerminator(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", gedcom.LF},
		{"lf", gedcom.LF},
		{"CRLF", gedcom.CRLF},
	}
	for _, tt := range tests {
		cfg := &Config{LineTerminator: tt.in}
		got, err := cfg.Terminator()
		if err != nil || got != tt.want {
			t.Errorf("Terminator(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestInitLogging(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"
	if err := cfg.InitLogging(); err != nil {
		t.Fatalf("InitLogging() error = %v", err)
	}
	defer func() {
		if err := Default().InitLogging(); err != nil {
			t.Fatal(err)
		}
	}()

	cfg.LogFormat = "yaml"
	if err := cfg.InitLogging(); err == nil {
		t.Error("InitLogging() should reject an unknown format")
	}
}
