package validate

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
	"github.com/FocuswithJustin/gedcomkit/core/options"
)

// AutoRepair records one in-place correction made for a finding.
type AutoRepair struct {
	Description string
	Before      string
	After       string
}

func (r AutoRepair) String() string {
	if r.Before == "" && r.After == "" {
		return r.Description
	}
	return fmt.Sprintf("%s (%q -> %q)", r.Description, r.Before, r.After)
}

// Finding is one validation observation. Findings are created by a
// Validator; callers read them and may attach related items or repairs.
type Finding struct {
	item        model.Element
	field       string
	severity    Severity
	code        int
	description string
	related     []model.Element
	repairs     []AutoRepair
}

func newFindingValue() *Finding {
	f := &Finding{}
	if options.CollectionInitializationEnabled() {
		f.related = []model.Element{}
		f.repairs = []AutoRepair{}
	}
	return f
}

// Item returns the record or structure the finding is about.
func (f *Finding) Item() model.Element { return f.item }

// FieldName returns the name of the field at fault, or "".
func (f *Finding) FieldName() string { return f.field }

// Severity returns the finding's severity.
func (f *Finding) Severity() Severity { return f.severity }

// ProblemCode returns the numeric problem code.
func (f *Finding) ProblemCode() int { return f.code }

// ProblemDescription returns the problem description.
func (f *Finding) ProblemDescription() string { return f.description }

// RelatedItems returns other records involved in the finding. The result is
// nil when collection initialization was disabled and nothing was added.
func (f *Finding) RelatedItems() []model.Element { return f.related }

// Repairs returns the repairs applied for this finding.
func (f *Finding) Repairs() []AutoRepair { return f.repairs }

// Repaired reports whether at least one repair was applied.
func (f *Finding) Repaired() bool { return len(f.repairs) > 0 }

// AddRelatedItem attaches another record to the finding.
func (f *Finding) AddRelatedItem(e model.Element) {
	f.related = append(f.related, e)
}

// AddRepair records a repair made for this finding.
func (f *Finding) AddRepair(r AutoRepair) {
	f.repairs = append(f.repairs, r)
}

// SetProblemCode assigns a custom problem code. Codes below
// CustomCodeStart are reserved and rejected.
func (f *Finding) SetProblemCode(code int) error {
	if code < 0 {
		return errors.NewValidation("problemCode",
			fmt.Sprintf("problem code must be a positive integer, got %d", code))
	}
	if code < CustomCodeStart {
		return errors.NewValidation("problemCode",
			fmt.Sprintf("values under %d are reserved for built-in rules, got %d", CustomCodeStart, code))
	}
	f.code = code
	return nil
}

// SetProblemDescription sets the description of a custom problem code. It
// fails while the finding still carries a built-in code.
func (f *Finding) SetProblemDescription(description string) error {
	if f.code < CustomCodeStart {
		return errors.NewValidation("problemDescription",
			fmt.Sprintf("descriptions of codes under %d are fixed; set a custom code first", CustomCodeStart))
	}
	f.description = description
	return nil
}

func (f *Finding) setProblem(p ProblemCode) {
	f.code = p.Code()
	f.description = p.Description()
}

// FieldValue returns the current value of the field at fault, looked up
// through the accessor table for the item's kind.
func (f *Finding) FieldValue() (any, bool) {
	if f.item == nil || f.field == "" {
		return nil, false
	}
	return FieldValue(f.item, f.field)
}

// ItemXRef returns the cross-reference of the item when it is a top-level
// record, otherwise "".
func (f *Finding) ItemXRef() string { return xrefOf(f.item) }

func (f *Finding) String() string {
	var sb strings.Builder
	sb.WriteString(f.severity.String())
	fmt.Fprintf(&sb, " [%d] ", f.code)
	if f.item != nil {
		sb.WriteString(string(f.item.Kind()))
		if x := xrefOf(f.item); x != "" {
			sb.WriteString(" " + x)
		}
		if f.field != "" {
			sb.WriteString("." + f.field)
		}
		sb.WriteString(": ")
	}
	sb.WriteString(f.description)
	for _, r := range f.repairs {
		sb.WriteString("; repaired: " + r.String())
	}
	return sb.String()
}

// xrefOf returns the cross-reference of top-level records.
func xrefOf(e model.Element) string {
	switch r := e.(type) {
	case *model.Submission:
		return r.XRef
	case *model.Submitter:
		return r.XRef
	case *model.Repository:
		return r.XRef
	case *model.Source:
		return r.XRef
	case *model.Multimedia:
		return r.XRef
	case *model.NoteRecord:
		return r.XRef
	case *model.Family:
		return r.XRef
	case *model.Individual:
		return r.XRef
	}
	return ""
}
