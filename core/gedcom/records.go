package gedcom

import (
	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

func (e *encoder) encodeRepository(xref string, r *model.Repository) {
	e.emitTag(0, xref, "REPO")
	e.emitIfPresent(1, "", "NAME", r.Name)
	e.encodeAddress(1, r.Address)
	e.encodeNotes(1, r.Notes)
	e.encodeUserReferences(1, r.UserReferences)
	e.emitIfPresent(1, "", "RIN", r.RecIDNumber)
	e.emitIfPresent(1, "", "RFN", r.RegFileNumber)
	e.encodePhoneNumbers(1, r.PhoneNumbers)
	e.encodeChangeDate(1, r.ChangeDate)
}

func (e *encoder) encodeSource(xref string, s *model.Source) {
	e.emitTag(0, xref, "SOUR")
	if d := s.Data; d != nil {
		e.emitTag(1, "", "DATA")
		for _, ev := range d.EventsRecorded {
			if ev == nil {
				continue
			}
			e.emitOptional(2, "", "EVEN", ev.EventType)
			e.emitIfPresent(3, "", "DATE", ev.DatePeriod)
			e.emitIfPresent(3, "", "PLAC", ev.Jurisdiction)
		}
		e.emitIfPresent(2, "", "AGNC", d.RespAgency)
		e.encodeNotes(2, d.Notes)
	}
	e.emitLines(1, "", "AUTH", s.OriginatorsAuthors)
	e.emitLines(1, "", "TITL", s.Title)
	e.emitIfPresent(1, "", "ABBR", s.SourceFiledBy)
	e.emitLines(1, "", "PUBL", s.PublicationFacts)
	e.emitLines(1, "", "TEXT", s.SourceText)
	e.encodeRepositoryCitation(1, s.RepositoryCitation)
	e.encodeMultimediaLinks(1, s.Multimedia)
	e.encodeNotes(1, s.Notes)
	e.encodeUserReferences(1, s.UserReferences)
	e.emitIfPresent(1, "", "RIN", s.RecIDNumber)
	e.emitIfPresent(1, "", "RFN", s.RegFileNumber)
	e.encodeChangeDate(1, s.ChangeDate)
}

func (e *encoder) encodeRepositoryCitation(level int, rc *model.RepositoryCitation) {
	if rc == nil {
		return
	}
	if rc.RepositoryXRef == "" {
		e.fail(errors.NewEncode("REPO", level, "repository citation has no repository reference"))
		return
	}
	e.pointer(level, "REPO", "repository", rc.RepositoryXRef, e.hasRepository)
	e.encodeNotes(level+1, rc.Notes)
	for _, cn := range rc.CallNumbers {
		if cn == nil {
			continue
		}
		e.required(level+1, "CALN", cn.CallNumber)
		e.emitIfPresent(level+2, "", "MEDI", cn.MediaType)
	}
}

func (e *encoder) encodeMultimedia(xref string, m *model.Multimedia) {
	e.emitTag(0, xref, "OBJE")
	e.required(1, "FORM", m.Format)
	e.emitIfPresent(1, "", "TITL", m.Title)
	e.encodeNotes(1, m.Notes)
	e.emitTag(1, "", "BLOB")
	for _, b := range m.Blob {
		e.required(2, "CONT", b)
	}
	e.pointerIfPresent(1, "OBJE", "multimedia", m.ContinuedObjectXRef, e.hasMultimedia)
	e.encodeUserReferences(1, m.UserReferences)
	e.emitIfPresent(1, "", "RIN", m.RecIDNumber)
	e.encodeChangeDate(1, m.ChangeDate)
}

func (e *encoder) encodeNoteRecord(xref string, n *model.NoteRecord) {
	if len(n.Lines) == 0 {
		e.emitTag(0, xref, "NOTE")
	} else {
		e.emitLines(0, xref, "NOTE", n.Lines)
	}
	e.encodeCitations(1, n.Citations)
	e.encodeUserReferences(1, n.UserReferences)
	e.emitIfPresent(1, "", "RIN", n.RecIDNumber)
	e.encodeChangeDate(1, n.ChangeDate)
}
