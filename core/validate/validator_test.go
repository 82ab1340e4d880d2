package validate

import (
	"errors"
	"testing"

	gederrors "github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// validGraph returns a graph that produces no findings.
func validGraph() *model.Gedcom {
	g := model.NewGedcom()
	g.Header.SourceSystem = &model.SourceSystem{SystemID: "ACME", VersionNum: "1.0"}
	g.Submitters.Put("@SUBM1@", &model.Submitter{XRef: "@SUBM1@", Name: "Jane Doe"})
	g.Header.SubmitterXRef = "@SUBM1@"
	return g
}

// mixedDefects returns a graph with two repairable ERROR findings and two
// repairable WARNING findings.
func mixedDefects() *model.Gedcom {
	g := validGraph()
	g.Trailer = nil
	g.Header.CharacterSet.CharacterSetName = ""
	g.Individuals.Put("@I1@", &model.Individual{
		XRef:           "@I1@",
		Sex:            "m",
		SpouseToFamily: []*model.SpouseToFamilyLink{{FamilyXRef: "@F1@"}},
	})
	g.Individuals.Put("@I2@", &model.Individual{
		XRef:          "@I2@",
		Sex:           "F",
		ChildToFamily: []*model.ChildToFamilyLink{{FamilyXRef: "@F1@"}},
	})
	g.Families.Put("@F1@", &model.Family{
		XRef:        "@F1@",
		HusbandXRef: "@I1@",
		ChildXRefs:  []string{"@I2@", "@I2@"},
	})
	return g
}

func mustValidator(t *testing.T, g *model.Gedcom, opts ...Option) *Validator {
	t.Helper()
	v, err := New(g, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return v
}

func TestNewRejectsNilGraph(t *testing.T) {
	v, err := New(nil)
	if err == nil || v != nil {
		t.Fatalf("New(nil) = %v, %v; want nil, error", v, err)
	}
	var ve *gederrors.ValidationError
	if !errors.As(err, &ve) || ve.Field != "gedcom" {
		t.Errorf("New(nil) error = %v, want ValidationError on gedcom", err)
	}
}

func TestValidGraphHasNoFindings(t *testing.T) {
	v := mustValidator(t, validGraph())
	v.Validate()
	if n := v.Results().Len(); n != 0 {
		for _, f := range v.Results().All() {
			t.Log(f)
		}
		t.Fatalf("Validate() produced %d findings, want 0", n)
	}
}

func TestMissingTrailerProducesExactlyOneFinding(t *testing.T) {
	g := validGraph()
	g.Trailer = nil

	v := mustValidator(t, g)
	v.Validate()

	all := v.Results().All()
	if len(all) != 1 {
		t.Fatalf("Validate() produced %d findings, want 1: %v", len(all), all)
	}
	f := all[0]
	if f.ProblemCode() != MissingRequiredValue.Code() {
		t.Errorf("ProblemCode() = %d, want %d", f.ProblemCode(), MissingRequiredValue.Code())
	}
	if f.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want ERROR", f.Severity())
	}
	if f.Item() != model.Element(g) {
		t.Errorf("Item() = %v, want the root graph", f.Item())
	}
	if f.FieldName() != "trailer" {
		t.Errorf("FieldName() = %q, want trailer", f.FieldName())
	}
	if f.ProblemDescription() != MissingRequiredValue.Description() {
		t.Errorf("ProblemDescription() = %q", f.ProblemDescription())
	}
	if g.Trailer != nil {
		t.Error("default policy repaired the trailer")
	}
}

func TestValidateClearsPreviousResults(t *testing.T) {
	g := validGraph()
	g.Trailer = nil
	v := mustValidator(t, g)

	v.Validate()
	v.Validate()
	if n := v.Results().Len(); n != 1 {
		t.Errorf("second Validate() left %d findings, want 1", n)
	}
}

func TestAutoRepairPolicies(t *testing.T) {
	tests := []struct {
		name         string
		responder    AutoRepairResponder
		wantRepaired map[Severity]bool
	}{
		{
			name:         "default denies all",
			responder:    nil,
			wantRepaired: map[Severity]bool{SeverityError: false, SeverityWarning: false},
		},
		{
			name:         "none",
			responder:    AutoRepairNone,
			wantRepaired: map[Severity]bool{SeverityError: false, SeverityWarning: false},
		},
		{
			name:         "all",
			responder:    AutoRepairAll,
			wantRepaired: map[Severity]bool{SeverityError: true, SeverityWarning: true},
		},
		{
			name:         "errors only",
			responder:    RepairAtOrAbove(SeverityError),
			wantRepaired: map[Severity]bool{SeverityError: true, SeverityWarning: false},
		},
		{
			name:         "warnings and above",
			responder:    RepairAtOrAbove(SeverityWarning),
			wantRepaired: map[Severity]bool{SeverityError: true, SeverityWarning: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts []Option
			if tt.responder != nil {
				opts = append(opts, WithAutoRepairResponder(tt.responder))
			}
			v := mustValidator(t, mixedDefects(), opts...)
			v.Validate()

			all := v.Results().All()
			if len(all) != 4 {
				t.Fatalf("Validate() produced %d findings, want 4: %v", len(all), all)
			}
			for _, f := range all {
				if got := f.Repaired(); got != tt.wantRepaired[f.Severity()] {
					t.Errorf("%v: Repaired() = %v, want %v", f, got, tt.wantRepaired[f.Severity()])
				}
			}
		})
	}
}

func TestAutoRepairAllFixesGraph(t *testing.T) {
	g := mixedDefects()
	v := mustValidator(t, g, WithAutoRepairResponder(AutoRepairAll))
	v.Validate()

	if g.Trailer == nil {
		t.Error("trailer not restored")
	}
	if got := g.Header.CharacterSet.CharacterSetName; got != model.DefaultCharacterSet {
		t.Errorf("CharacterSetName = %q, want %q", got, model.DefaultCharacterSet)
	}
	i1, _ := g.Individuals.Get("@I1@")
	if i1.Sex != "M" {
		t.Errorf("Sex = %q, want M", i1.Sex)
	}
	f1, _ := g.Families.Get("@F1@")
	if len(f1.ChildXRefs) != 1 {
		t.Errorf("ChildXRefs = %v, want one child", f1.ChildXRefs)
	}

	v.Validate()
	if n := v.Results().Len(); n != 0 {
		t.Errorf("repaired graph still has %d findings: %v", n, v.Results().All())
	}
}

func TestSetAutoRepairResponderNil(t *testing.T) {
	v := mustValidator(t, mixedDefects(), WithAutoRepairResponder(AutoRepairAll))
	v.SetAutoRepairResponder(nil)
	if v.AutoRepairResponder() != nil {
		t.Error("AutoRepairResponder() should be nil")
	}
	v.Validate()
	if n := v.Results().RepairCount(); n != 0 {
		t.Errorf("RepairCount() = %d with nil responder, want 0", n)
	}
}

func TestCustomResponderSeesFinding(t *testing.T) {
	var fields []string
	responder := AutoRepairFunc(func(f *Finding) bool {
		fields = append(fields, f.FieldName())
		return f.FieldName() == "trailer"
	})

	g := mixedDefects()
	v := mustValidator(t, g, WithAutoRepairResponder(responder))
	v.Validate()

	if g.Trailer == nil {
		t.Error("trailer should be repaired")
	}
	if g.Header.CharacterSet.CharacterSetName != "" {
		t.Error("character set should not be repaired")
	}
	if len(fields) != 4 {
		t.Errorf("responder consulted %d times, want 4 (%v)", len(fields), fields)
	}
}

func TestNewFindingArguments(t *testing.T) {
	g := validGraph()
	var nilHeader *model.Header

	tests := []struct {
		name      string
		item      model.Element
		severity  Severity
		code      ProblemCode
		wantField string
	}{
		{"nil item", nil, SeverityError, MissingRequiredValue, "itemOfConcern"},
		{"typed nil item", nilHeader, SeverityError, MissingRequiredValue, "itemOfConcern"},
		{"unset severity", g, 0, MissingRequiredValue, "severity"},
		{"unknown severity", g, Severity(9), MissingRequiredValue, "severity"},
		{"unset code", g, SeverityError, 0, "problemCode"},
		{"custom range code", g, SeverityError, ProblemCode(1000), "problemCode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustValidator(t, g)
			f, err := v.NewFinding(tt.item, tt.severity, tt.code, "x")
			if err == nil || f != nil {
				t.Fatalf("NewFinding() = %v, %v; want error", f, err)
			}
			var ve *gederrors.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.wantField {
				t.Errorf("NewFinding() error = %v, want field %s", err, tt.wantField)
			}
			if v.Results().Len() != 0 {
				t.Error("failed NewFinding appended to results")
			}
		})
	}
}

func TestNewFindingAppendsAndReturns(t *testing.T) {
	g := validGraph()
	v := mustValidator(t, g)

	f, err := v.NewFinding(g.Header, SeverityInfo, IllegalValue, "language")
	if err != nil {
		t.Fatalf("NewFinding() error = %v", err)
	}
	f.AddRelatedItem(g)
	if got := v.Results().All(); len(got) != 1 || got[0] != f {
		t.Fatalf("Results().All() = %v, want [f]", got)
	}
	if len(f.RelatedItems()) != 1 {
		t.Errorf("RelatedItems() = %v", f.RelatedItems())
	}
}

type languageRule struct{}

func (languageRule) Name() string { return "header-language" }

func (languageRule) Check(v *Validator) {
	h := v.Gedcom().Header
	if h == nil || h.Language != "" {
		return
	}
	f, err := v.NewCustomFinding(h, SeverityInfo, 1001, "Header has no language", "language")
	if err != nil {
		panic(err)
	}
	if v.MayRepair(f) {
		h.Language = "English"
		f.AddRepair(AutoRepair{Description: "set language", After: "English"})
	}
}

func TestCustomRule(t *testing.T) {
	g := validGraph()
	g.Trailer = nil
	v := mustValidator(t, g, WithRule(languageRule{}))
	v.Validate()

	all := v.Results().All()
	if len(all) != 2 {
		t.Fatalf("Validate() produced %d findings, want 2: %v", len(all), all)
	}
	if all[0].ProblemCode() != 1001 || all[0].ProblemDescription() != "Header has no language" {
		t.Errorf("custom finding = %v", all[0])
	}
	if all[1].FieldName() != "trailer" {
		t.Errorf("trailer check should run after custom rules, got %v", all[1])
	}
	if got := v.Results().ByProblemCode(1001); len(got) != 1 {
		t.Errorf("ByProblemCode(1001) = %v", got)
	}

	v.SetAutoRepairResponder(AutoRepairAll)
	v.AddRule(languageRule{})
	v.Validate()
	if g.Header.Language != "English" {
		t.Errorf("Language = %q, want repaired value", g.Header.Language)
	}
}

func TestNewCustomFindingRejectsReservedCode(t *testing.T) {
	g := validGraph()
	v := mustValidator(t, g)
	if _, err := v.NewCustomFinding(g, SeverityError, 999, "reserved", ""); err == nil {
		t.Error("NewCustomFinding(999) should fail")
	}
	if _, err := v.NewCustomFinding(nil, SeverityError, 1000, "nil item", ""); err == nil {
		t.Error("NewCustomFinding(nil item) should fail")
	}
	if _, err := v.NewCustomFinding(g, 0, 1000, "no severity", ""); err == nil {
		t.Error("NewCustomFinding(no severity) should fail")
	}
	if v.Results().Len() != 0 {
		t.Error("rejected custom findings were recorded")
	}
}

func TestResultsFilters(t *testing.T) {
	v := mustValidator(t, mixedDefects(), WithAutoRepairResponder(RepairAtOrAbove(SeverityError)))
	v.Validate()
	r := v.Results()

	if !r.HasErrors() {
		t.Error("HasErrors() = false")
	}
	if got := len(r.Errors()); got != 2 {
		t.Errorf("len(Errors()) = %d, want 2", got)
	}
	if got := len(r.Warnings()); got != 2 {
		t.Errorf("len(Warnings()) = %d, want 2", got)
	}
	if got := len(r.Unrepaired(SeverityError)); got != 0 {
		t.Errorf("len(Unrepaired(ERROR)) = %d, want 0", got)
	}
	if got := len(r.Unrepaired(SeverityWarning)); got != 2 {
		t.Errorf("len(Unrepaired(WARNING)) = %d, want 2", got)
	}
	if got := r.RepairCount(); got != 2 {
		t.Errorf("RepairCount() = %d, want 2", got)
	}

	r.Clear()
	if r.Len() != 0 || r.HasErrors() {
		t.Error("Clear() left findings behind")
	}
}
