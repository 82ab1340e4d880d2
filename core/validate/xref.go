package validate

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// IsValidXRef reports whether x has the form @ID@ with a non-empty ID that
// holds neither '@' nor whitespace.
func IsValidXRef(x string) bool {
	if len(x) < 3 || x[0] != '@' || x[len(x)-1] != '@' {
		return false
	}
	inner := x[1 : len(x)-1]
	return !strings.ContainsAny(inner, "@ \t\r\n")
}

// checkRecordXRef verifies that a top-level record's own xref matches the
// key it is stored under and that the key is well formed.
func (v *Validator) checkRecordXRef(key string, item model.Element, xref *string) {
	if *xref != key {
		f := v.finding(item, SeverityError, XRefMismatch, "xref")
		if v.MayRepair(f) {
			before := *xref
			*xref = key
			v.repaired(f, "set xref to its index key", before, key)
		}
	}
	if !IsValidXRef(key) {
		v.finding(item, SeverityError, InvalidXRef, "xref")
	}
}

func (v *Validator) hasSubmitter(x string) bool  { return v.gedcom.Submitters.Has(x) }
func (v *Validator) hasIndividual(x string) bool { return v.gedcom.Individuals.Has(x) }
func (v *Validator) hasFamily(x string) bool     { return v.gedcom.Families.Has(x) }
func (v *Validator) hasMultimedia(x string) bool { return v.gedcom.Multimedia.Has(x) }
func (v *Validator) hasNote(x string) bool       { return v.gedcom.Notes.Has(x) }
func (v *Validator) hasRepository(x string) bool { return v.gedcom.Repositories.Has(x) }
func (v *Validator) hasSource(x string) bool     { return v.gedcom.Sources.Has(x) }

// hasAnyRecord reports whether x names a top-level record of any kind.
func (v *Validator) hasAnyRecord(x string) bool {
	g := v.gedcom
	if g.Submission != nil && g.Submission.XRef == x {
		return true
	}
	return v.hasSubmitter(x) || v.hasIndividual(x) || v.hasFamily(x) ||
		v.hasMultimedia(x) || v.hasNote(x) || v.hasRepository(x) || v.hasSource(x)
}

// checkLink records a CrossReferenceNotFound finding when a non-empty xref
// does not resolve.
func (v *Validator) checkLink(item model.Element, field, xref string, exists func(string) bool) bool {
	if xref == "" || exists(xref) {
		return true
	}
	v.finding(item, SeverityError, CrossReferenceNotFound, field)
	return false
}

// checkLinks prunes blank entries of a list field and applies checkLink to
// the rest. It returns the list to store back.
func (v *Validator) checkLinks(item model.Element, field string, xrefs []string, exists func(string) bool) []string {
	xrefs = v.pruneBlank(item, field, xrefs)
	for _, x := range xrefs {
		if strings.TrimSpace(x) == "" {
			continue
		}
		v.checkLink(item, field, x, exists)
	}
	return xrefs
}

// pruneBlank reports blank entries of a string list and removes them when
// approved. It returns the list to store back.
func (v *Validator) pruneBlank(item model.Element, field string, list []string) []string {
	blank := 0
	for _, s := range list {
		if strings.TrimSpace(s) == "" {
			blank++
		}
	}
	if blank == 0 {
		return list
	}
	f := v.finding(item, SeverityWarning, BlankListEntry, field)
	if !v.MayRepair(f) {
		return list
	}
	kept := make([]string, 0, len(list)-blank)
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, s)
		}
	}
	v.repaired(f, "removed blank entries", strings.Join(list, "|"), strings.Join(kept, "|"))
	return kept
}
