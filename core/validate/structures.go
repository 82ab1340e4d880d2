package validate

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

var adoptedByValues = map[string]bool{"HUSB": true, "WIFE": true, "BOTH": true}

func (v *Validator) validateNotes(notes []*model.NoteStructure) {
	for _, n := range notes {
		if n == nil {
			continue
		}
		if n.XRef != "" {
			v.checkLink(n, "xref", n.XRef, v.hasNote)
		} else if len(n.Lines) == 0 && len(n.Citations) == 0 {
			v.finding(n, SeverityWarning, MissingRequiredValue, "lines")
		}
		v.validateCitations(n.Citations)
	}
}

func (v *Validator) validateCitations(citations []*model.Citation) {
	for _, c := range citations {
		if c == nil {
			continue
		}
		switch {
		case c.SourceXRef != "":
			v.checkLink(c, "sourceXRef", c.SourceXRef, v.hasSource)
		case len(c.Description) == 0:
			v.finding(c, SeverityError, MissingRequiredValue, "sourceXRef")
		}
		if c.Certainty != "" && !isCertainty(c.Certainty) {
			v.finding(c, SeverityWarning, IllegalValue, "certainty")
		}
		v.validateMultimediaLinks(c.Multimedia)
		v.validateNotes(c.Notes)
	}
}

func isCertainty(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '3'
}

func (v *Validator) validateMultimediaLinks(links []*model.MultimediaLink) {
	for _, m := range links {
		if m == nil {
			continue
		}
		if m.XRef != "" {
			v.checkLink(m, "xref", m.XRef, v.hasMultimedia)
			continue
		}
		if strings.TrimSpace(m.Format) == "" {
			v.finding(m, SeverityError, MissingRequiredValue, "format")
		}
		if strings.TrimSpace(m.FileReference) == "" {
			v.finding(m, SeverityError, MissingRequiredValue, "fileReference")
		}
		v.validateNotes(m.Notes)
	}
}

func (v *Validator) validateUserReferences(refs []*model.UserReference) {
	for _, u := range refs {
		if u != nil && strings.TrimSpace(u.ReferenceNum) == "" {
			v.finding(u, SeverityError, MissingRequiredValue, "referenceNum")
		}
	}
}

func (v *Validator) validateChangeDate(cd *model.ChangeDate) {
	if cd == nil {
		return
	}
	if strings.TrimSpace(cd.Date) == "" {
		v.finding(cd, SeverityError, MissingRequiredValue, "date")
	}
	v.validateNotes(cd.Notes)
}

func (v *Validator) validateEvents(events []*model.Event) {
	for _, e := range events {
		if e == nil {
			continue
		}
		if strings.TrimSpace(e.Tag) == "" {
			v.finding(e, SeverityError, MissingRequiredValue, "tag")
		}
		if p := e.Place; p != nil {
			v.validateCitations(p.Citations)
			v.validateNotes(p.Notes)
		}
		v.checkLink(e, "familyXRef", e.FamilyXRef, v.hasFamily)
		if e.AdoptedBy != "" && !adoptedByValues[e.AdoptedBy] {
			f := v.finding(e, SeverityWarning, IllegalValue, "adoptedBy")
			upper := strings.ToUpper(strings.TrimSpace(e.AdoptedBy))
			if adoptedByValues[upper] && v.MayRepair(f) {
				before := e.AdoptedBy
				e.AdoptedBy = upper
				v.repaired(f, "normalized adoption qualifier", before, upper)
			}
		}
		v.validateCitations(e.Citations)
		v.validateMultimediaLinks(e.Multimedia)
		v.validateNotes(e.Notes)
	}
}
