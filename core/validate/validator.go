package validate

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/internal/logging"
	"github.com/FocuswithJustin/gedcomkit/internal/metrics"
)

// Rule is a caller-supplied check run after the built-in sub-validators.
// Rules report problems with Validator.NewCustomFinding or NewFinding and
// may repair the graph when Validator.MayRepair approves.
type Rule interface {
	Name() string
	Check(v *Validator)
}

// Option configures a Validator.
type Option func(*Validator)

// WithAutoRepairResponder installs the repair policy.
func WithAutoRepairResponder(r AutoRepairResponder) Option {
	return func(v *Validator) { v.responder = r }
}

// WithRule registers a custom rule.
func WithRule(r Rule) Option {
	return func(v *Validator) { v.rules = append(v.rules, r) }
}

// WithLogger sets the logger used for pass summaries and repairs.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// Validator walks a record graph, records findings and applies the repairs
// its policy approves. A Validator is not safe for concurrent use.
type Validator struct {
	gedcom    *model.Gedcom
	results   Results
	responder AutoRepairResponder
	rules     []Rule
	logger    *slog.Logger
}

// New creates a Validator for g. The default policy repairs nothing.
func New(g *model.Gedcom, opts ...Option) (*Validator, error) {
	if g == nil {
		return nil, errors.NewValidation("gedcom", "is a required argument")
	}
	v := &Validator{
		gedcom:    g,
		responder: AutoRepairNone,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = logging.GetLogger()
	}
	return v, nil
}

// Gedcom returns the graph under validation.
func (v *Validator) Gedcom() *model.Gedcom { return v.gedcom }

// Results returns the findings of the last pass.
func (v *Validator) Results() *Results { return &v.results }

// AutoRepairResponder returns the installed policy, or nil.
func (v *Validator) AutoRepairResponder() AutoRepairResponder { return v.responder }

// SetAutoRepairResponder replaces the policy. nil disables all repairs.
func (v *Validator) SetAutoRepairResponder(r AutoRepairResponder) { v.responder = r }

// AddRule registers a custom rule.
func (v *Validator) AddRule(r Rule) { v.rules = append(v.rules, r) }

// Validate clears the results and runs a full pass: header, submission,
// submitters, individuals, families, multimedia, notes, repositories,
// sources, custom rules and finally the trailer check.
func (v *Validator) Validate() {
	v.results.Clear()
	g := v.gedcom

	v.validateHeader()
	v.validateSubmission()
	g.Submitters.Each(func(key string, s *model.Submitter) bool {
		v.validateSubmitter(key, s)
		return true
	})
	g.Individuals.Each(func(key string, i *model.Individual) bool {
		v.validateIndividual(key, i)
		return true
	})
	g.Families.Each(func(key string, f *model.Family) bool {
		v.validateFamily(key, f)
		return true
	})
	g.Multimedia.Each(func(key string, m *model.Multimedia) bool {
		v.validateMultimedia(key, m)
		return true
	})
	g.Notes.Each(func(key string, n *model.NoteRecord) bool {
		v.validateNoteRecord(key, n)
		return true
	})
	g.Repositories.Each(func(key string, r *model.Repository) bool {
		v.validateRepository(key, r)
		return true
	})
	g.Sources.Each(func(key string, s *model.Source) bool {
		v.validateSource(key, s)
		return true
	})

	for _, r := range v.rules {
		v.logger.Debug("running custom rule", "rule", r.Name())
		r.Check(v)
	}

	if g.Trailer == nil {
		f := v.finding(g, SeverityError, MissingRequiredValue, "trailer")
		if v.MayRepair(f) {
			g.Trailer = &model.Trailer{}
			v.repaired(f, "added trailer", "", "TRLR")
		}
	}

	for _, f := range v.results.findings {
		metrics.Finding(f.severity.String())
	}
	logging.ValidationComplete(v.logger, v.results.Len(), len(v.results.Errors()), v.results.RepairCount())
}

// NewFinding records a finding with a built-in problem code and returns it.
// item must be non-nil, severity defined and code a built-in code.
func (v *Validator) NewFinding(item model.Element, severity Severity, code ProblemCode, field string) (*Finding, error) {
	if isNil(item) {
		return nil, errors.NewValidation("itemOfConcern", "is a required argument")
	}
	if !severity.IsValid() {
		return nil, errors.NewValidation("severity", "is a required argument")
	}
	if !code.IsBuiltIn() {
		return nil, errors.NewValidation("problemCode", fmt.Sprintf("%d is not a built-in problem code", int(code)))
	}
	f := newFindingValue()
	f.item = item
	f.severity = severity
	f.setProblem(code)
	f.field = field
	v.results.add(f)
	return f, nil
}

// NewCustomFinding records a finding with a caller-defined code
// (CustomCodeStart or above) and description.
func (v *Validator) NewCustomFinding(item model.Element, severity Severity, code int, description, field string) (*Finding, error) {
	if isNil(item) {
		return nil, errors.NewValidation("itemOfConcern", "is a required argument")
	}
	if !severity.IsValid() {
		return nil, errors.NewValidation("severity", "is a required argument")
	}
	f := newFindingValue()
	if err := f.SetProblemCode(code); err != nil {
		return nil, err
	}
	if err := f.SetProblemDescription(description); err != nil {
		return nil, err
	}
	f.item = item
	f.severity = severity
	f.field = field
	v.results.add(f)
	return f, nil
}

// MayRepair asks the installed policy whether f may be repaired.
func (v *Validator) MayRepair(f *Finding) bool {
	if v.responder == nil {
		return false
	}
	return v.responder.MayRepair(f)
}

// finding is NewFinding for the built-in validators, whose arguments are
// always well formed.
func (v *Validator) finding(item model.Element, severity Severity, code ProblemCode, field string) *Finding {
	f, err := v.NewFinding(item, severity, code, field)
	if err != nil {
		panic(fmt.Sprintf("validate: bad built-in finding: %v", err))
	}
	return f
}

// repaired records a repair on f.
func (v *Validator) repaired(f *Finding, description, before, after string) {
	f.AddRepair(AutoRepair{Description: description, Before: before, After: after})
	metrics.RepairApplied()
	logging.RepairApplied(v.logger, string(f.item.Kind()), f.field, description)
}

func isNil(e model.Element) bool {
	if e == nil {
		return true
	}
	rv := reflect.ValueOf(e)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
