// Command gedcom validates, repairs, converts and exports GEDCOM 5.5 files.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/gedcomkit/core/gedcom"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/internal/config"
	"github.com/FocuswithJustin/gedcomkit/internal/metrics"
)

const version = "0.1.0"

// stdout and stdin are variables so tests can capture command I/O.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// CLI defines the command-line interface for gedcom.
type CLI struct {
	Globals

	Validate ValidateCmd `cmd:"" help:"Validate a file and report findings"`
	Convert  ConvertCmd  `cmd:"" help:"Re-encode a file, optionally validating and repairing it"`
	Digest   DigestCmd   `cmd:"" help:"Print the BLAKE3 digest of the canonical encoding"`
	Export   ExportCmd   `cmd:"" help:"Store records and a validation run in SQLite"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// Globals are flags shared by every command. Set flags override the
// config file and environment.
type Globals struct {
	Config      string `name:"config" help:"YAML config file" type:"path"`
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)"`
	LogFormat   string `name:"log-format" help:"Log format (json, text)"`
	MetricsFile string `name:"metrics-file" help:"Write prometheus metrics to this file on exit" type:"path"`
}

// load builds the effective configuration and initializes logging.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.LogFormat = g.LogFormat
	}
	if g.MetricsFile != "" {
		cfg.MetricsFile = g.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.InitLogging(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readInput decodes path, or standard input when path is "-".
func readInput(path string) (*model.Gedcom, error) {
	if path == "-" {
		return gedcom.Read(stdin)
	}
	return gedcom.ReadFile(path)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gedcom"),
		kong.Description("GEDCOM 5.5 validation, repair and conversion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	cfg, err := cli.load()
	ctx.FatalIfErrorf(err)

	err = ctx.Run(cfg)
	if cfg.MetricsFile != "" {
		if merr := metrics.WriteTextfile(cfg.MetricsFile); merr != nil && err == nil {
			err = merr
		}
	}
	ctx.FatalIfErrorf(err)
}
