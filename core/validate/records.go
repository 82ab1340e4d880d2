package validate

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// MaxLanguagePreferences is the number of LANG entries a submitter may carry.
const MaxLanguagePreferences = 3

func (v *Validator) validateSubmitter(key string, s *model.Submitter) {
	if s == nil {
		return
	}
	v.checkRecordXRef(key, s, &s.XRef)

	if strings.TrimSpace(s.Name) == "" {
		v.finding(s, SeverityError, MissingRequiredValue, "name")
	}
	s.LanguagePref = v.pruneBlank(s, "languagePref", s.LanguagePref)
	if len(s.LanguagePref) > MaxLanguagePreferences {
		v.finding(s, SeverityWarning, TooManyEntries, "languagePref")
	}
	s.PhoneNumbers = v.pruneBlank(s, "phoneNumbers", s.PhoneNumbers)
	v.validateMultimediaLinks(s.Multimedia)
	v.validateChangeDate(s.ChangeDate)
}

func (v *Validator) validateRepository(key string, r *model.Repository) {
	if r == nil {
		return
	}
	v.checkRecordXRef(key, r, &r.XRef)

	if strings.TrimSpace(r.Name) == "" {
		v.finding(r, SeverityWarning, MissingRequiredValue, "name")
	}
	r.PhoneNumbers = v.pruneBlank(r, "phoneNumbers", r.PhoneNumbers)
	v.validateNotes(r.Notes)
	v.validateUserReferences(r.UserReferences)
	v.validateChangeDate(r.ChangeDate)
}

func (v *Validator) validateSource(key string, s *model.Source) {
	if s == nil {
		return
	}
	v.checkRecordXRef(key, s, &s.XRef)

	if d := s.Data; d != nil {
		v.validateNotes(d.Notes)
	}
	if rc := s.RepositoryCitation; rc != nil {
		v.validateRepositoryCitation(s, rc)
	}
	v.validateMultimediaLinks(s.Multimedia)
	v.validateNotes(s.Notes)
	v.validateUserReferences(s.UserReferences)
	v.validateChangeDate(s.ChangeDate)
}

func (v *Validator) validateRepositoryCitation(s *model.Source, rc *model.RepositoryCitation) {
	if rc.RepositoryXRef == "" || !v.hasRepository(rc.RepositoryXRef) {
		f := v.finding(rc, SeverityError, CrossReferenceNotFound, "repositoryXRef")
		f.AddRelatedItem(s)
		if v.MayRepair(f) {
			s.RepositoryCitation = nil
			v.repaired(f, "removed repository citation", rc.RepositoryXRef, "")
			return
		}
	}
	v.validateNotes(rc.Notes)

	blank := 0
	for _, cn := range rc.CallNumbers {
		if cn == nil || strings.TrimSpace(cn.CallNumber) == "" {
			blank++
		}
	}
	if blank == 0 {
		return
	}
	f := v.finding(rc, SeverityWarning, BlankListEntry, "callNumbers")
	if !v.MayRepair(f) {
		return
	}
	kept := make([]*model.SourceCallNumber, 0, len(rc.CallNumbers)-blank)
	for _, cn := range rc.CallNumbers {
		if cn != nil && strings.TrimSpace(cn.CallNumber) != "" {
			kept = append(kept, cn)
		}
	}
	rc.CallNumbers = kept
	v.repaired(f, "removed blank call numbers", "", "")
}

func (v *Validator) validateMultimedia(key string, m *model.Multimedia) {
	if m == nil {
		return
	}
	v.checkRecordXRef(key, m, &m.XRef)

	if strings.TrimSpace(m.Format) == "" {
		v.finding(m, SeverityError, MissingRequiredValue, "format")
	}
	m.Blob = v.pruneBlank(m, "blob", m.Blob)
	v.checkLink(m, "continuedObjectXRef", m.ContinuedObjectXRef, v.hasMultimedia)
	v.validateNotes(m.Notes)
	v.validateUserReferences(m.UserReferences)
	v.validateChangeDate(m.ChangeDate)
}

func (v *Validator) validateNoteRecord(key string, n *model.NoteRecord) {
	if n == nil {
		return
	}
	v.checkRecordXRef(key, n, &n.XRef)

	if len(n.Lines) == 0 {
		v.finding(n, SeverityWarning, MissingRequiredValue, "lines")
	}
	v.validateCitations(n.Citations)
	v.validateUserReferences(n.UserReferences)
	v.validateChangeDate(n.ChangeDate)
}
