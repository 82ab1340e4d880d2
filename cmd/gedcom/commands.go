package main

import (
	"context"
	"fmt"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/gedcom"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/core/sqlite"
	"github.com/FocuswithJustin/gedcomkit/core/validate"
	"github.com/FocuswithJustin/gedcomkit/internal/config"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
	"github.com/FocuswithJustin/gedcomkit/internal/store"
)

// ValidateCmd validates a file and prints its findings.
type ValidateCmd struct {
	Path       string `arg:"" help:"GEDCOM file (- for standard input)"`
	AutoRepair string `name:"auto-repair" help:"Repair policy (none, all, errors, warnings)"`
	FailOn     string `name:"fail-on" help:"Fail when unrepaired findings at or above this severity remain" default:"error" enum:"info,warning,error"`
	Out        string `help:"Write the repaired file here" type:"path"`
}

func (c *ValidateCmd) Run(cfg *config.Config) error {
	failOn, err := validate.ParseSeverity(c.FailOn)
	if err != nil {
		return err
	}
	g, err := readInput(c.Path)
	if err != nil {
		return err
	}
	results, err := runValidation(cfg, g, c.AutoRepair)
	if err != nil {
		return err
	}

	for _, f := range results.All() {
		fmt.Fprintln(stdout, f.String())
	}
	fmt.Fprintf(stdout, "%d finding(s), %d error(s), %d repaired\n",
		results.Len(), len(results.Errors()), results.RepairCount())

	if c.Out != "" {
		if err := writeOutput(cfg, g, c.Out, false); err != nil {
			return err
		}
	}
	if open := results.Unrepaired(failOn); len(open) > 0 {
		return fmt.Errorf("%d unrepaired finding(s) at or above %s", len(open), failOn)
	}
	return nil
}

// ConvertCmd decodes a file and encodes it again. An output path ending in
// .xz is compressed.
type ConvertCmd struct {
	Path       string `arg:"" help:"GEDCOM file (- for standard input)"`
	Out        string `required:"" help:"Output path" type:"path"`
	Validate   bool   `help:"Validate before writing and refuse to write while errors remain"`
	AutoRepair string `name:"auto-repair" help:"Repair policy used with --validate (none, all, errors, warnings)"`
	CRLF       bool   `name:"crlf" help:"Terminate lines with CR LF"`
}

func (c *ConvertCmd) Run(cfg *config.Config) error {
	if c.AutoRepair != "" {
		cfg.AutoRepair = c.AutoRepair
	}
	if c.CRLF {
		cfg.LineTerminator = "crlf"
	}
	g, err := readInput(c.Path)
	if err != nil {
		return err
	}
	if err := writeOutput(cfg, g, c.Out, c.Validate || cfg.ValidateBeforeWrite); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", c.Out)
	return nil
}

// DigestCmd prints the digest of a file's canonical encoding.
type DigestCmd struct {
	Paths []string `arg:"" help:"GEDCOM files"`
}

func (c *DigestCmd) Run(cfg *config.Config) error {
	for _, p := range c.Paths {
		g, err := readInput(p)
		if err != nil {
			return err
		}
		d, err := gedcom.Digest(g)
		if err != nil {
			return errors.Wrapf(err, "digest %s", p)
		}
		fmt.Fprintf(stdout, "%s  %s\n", d, p)
	}
	return nil
}

// ExportCmd validates a file and stores its records and findings.
type ExportCmd struct {
	Path       string `arg:"" help:"GEDCOM file (- for standard input)"`
	DB         string `name:"db" help:"SQLite database path" type:"path"`
	AutoRepair string `name:"auto-repair" help:"Repair policy applied before storing (none, all, errors, warnings)"`
}

func (c *ExportCmd) Run(cfg *config.Config) error {
	ctx := context.Background()
	dbPath := c.DB
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}

	g, err := readInput(c.Path)
	if err != nil {
		return err
	}
	results, err := runValidation(cfg, g, c.AutoRepair)
	if err != nil {
		return err
	}

	s, err := store.Open(ctx, dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	// A graph that cannot be encoded still gets its validation run stored,
	// unlinked. Database failures stop here.
	graphID := ""
	graph, gerr := s.SaveGraph(ctx, g)
	var encErr *errors.EncodeError
	switch {
	case gerr == nil:
		graphID = graph.ID
		fmt.Fprintf(stdout, "graph %s: %d record(s), digest %s\n", graph.ID, graph.Records, graph.Digest)
	case !errors.As(gerr, &encErr):
		return gerr
	}
	run, err := s.SaveRun(ctx, graphID, results)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "run %s: %d finding(s), %d error(s), %d repaired\n",
		run.ID, run.Findings, run.Errors, run.Repairs)
	if gerr != nil {
		return errors.Wrap(gerr, "records not stored")
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	info := sqlite.GetInfo()
	fmt.Fprintf(stdout, "gedcom version %s (sqlite: %s, %s)\n", version, info.Package, info.DriverType)
	return nil
}

// runValidation validates g with the policy named by override, or the
// configured one when override is empty.
func runValidation(cfg *config.Config, g *model.Gedcom, override string) (*validate.Results, error) {
	policy := cfg.AutoRepair
	if override != "" {
		policy = override
	}
	responder, err := config.ParseResponder(policy)
	if err != nil {
		return nil, err
	}
	v, err := validate.New(g,
		validate.WithAutoRepairResponder(responder),
		validate.WithLogger(logging.GetLogger()))
	if err != nil {
		return nil, err
	}
	v.Validate()
	return v.Results(), nil
}

func writeOutput(cfg *config.Config, g *model.Gedcom, path string, validateFirst bool) error {
	eol, err := cfg.Terminator()
	if err != nil {
		return err
	}
	opts := []gedcom.WriterOption{gedcom.WithLineTerminator(eol)}
	if validateFirst {
		responder, err := cfg.Responder()
		if err != nil {
			return err
		}
		opts = append(opts, gedcom.WithValidation(responder))
	}
	return gedcom.WriteFile(g, path, opts...)
}
