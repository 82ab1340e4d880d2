package gedcom

import (
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

func (e *encoder) encodeHeader(h *model.Header) {
	e.emitTag(0, "", "HEAD")
	e.encodeSourceSystem(h.SourceSystem)
	e.emitIfPresent(1, "", "DEST", h.DestinationSystem)
	if h.Date != "" {
		e.line(1, "", "DATE", h.Date)
		e.emitIfPresent(2, "", "TIME", h.Time)
	}
	if h.SubmitterXRef != "" {
		e.pointer(1, "SUBM", "submitter", h.SubmitterXRef, e.hasSubmitter)
	}
	if h.SubmissionXRef != "" {
		e.pointer(1, "SUBN", "submission", h.SubmissionXRef, e.hasSubmission)
	}
	e.emitIfPresent(1, "", "FILE", h.FileName)
	e.emitIfPresent(1, "", "COPR", h.CopyrightData)

	e.emitTag(1, "", "GEDC")
	gv := h.GedcomVersion
	if gv == nil {
		gv = &model.GedcomVersion{}
	}
	e.required(2, "VERS", gv.VersionNumber)
	e.required(2, "FORM", gv.GedcomForm)

	cs := h.CharacterSet
	if cs == nil {
		cs = &model.CharacterSet{}
	}
	e.required(1, "CHAR", cs.CharacterSetName)
	e.emitIfPresent(2, "", "VERS", cs.VersionNum)

	e.emitIfPresent(1, "", "LANG", h.Language)
	if h.PlaceStructure != "" {
		e.emitTag(1, "", "PLAC")
		e.required(2, "FORM", h.PlaceStructure)
	}
	e.emitLines(1, "", "NOTE", h.Notes)
}

// encodeSourceSystem writes the SOUR block of the header. The SOUR line is
// written bare when the system id is empty so its children keep a parent.
func (e *encoder) encodeSourceSystem(ss *model.SourceSystem) {
	if ss == nil {
		return
	}
	e.emitOptional(1, "", "SOUR", ss.SystemID)
	e.emitOptional(2, "", "VERS", ss.VersionNum)
	e.emitOptional(2, "", "NAME", ss.ProductName)
	if c := ss.Corporation; c != nil {
		e.emitOptional(2, "", "CORP", c.BusinessName)
		e.encodeAddress(3, c.Address)
		e.encodePhoneNumbers(3, c.PhoneNumbers)
	}
	if d := ss.SourceData; d != nil {
		e.emitOptional(2, "", "DATA", d.Name)
		e.emitIfPresent(3, "", "DATE", d.PublishDate)
		e.emitIfPresent(3, "", "COPR", d.Copyright)
	}
}

func (e *encoder) encodeSubmission(s *model.Submission) {
	e.emitTag(0, s.XRef, "SUBN")
	e.pointerIfPresent(1, "SUBM", "submitter", s.SubmitterXRef, e.hasSubmitter)
	e.emitIfPresent(1, "", "FAMF", s.NameOfFamilyFile)
	e.emitIfPresent(1, "", "TEMP", s.TempleCode)
	e.emitIfPresent(1, "", "ANCE", s.AncestorsCount)
	e.emitIfPresent(1, "", "DESC", s.DescendantsCount)
	e.emitIfPresent(1, "", "ORDI", s.OrdinanceProcessFlag)
	e.emitIfPresent(1, "", "RIN", s.RecIDNumber)
}

// encodeSubmitter writes a SUBM record. PHON is not part of the 5.5 SUBM
// record but is written back because real files carry it.
func (e *encoder) encodeSubmitter(xref string, s *model.Submitter) {
	e.emitTag(0, xref, "SUBM")
	e.emitOptional(1, "", "NAME", s.Name)
	e.encodeAddress(1, s.Address)
	e.encodeMultimediaLinks(1, s.Multimedia)
	for _, l := range s.LanguagePref {
		e.required(1, "LANG", l)
	}
	for _, p := range s.PhoneNumbers {
		e.required(1, "PHON", p)
	}
	e.emitIfPresent(1, "", "RFN", s.RegFileNumber)
	e.emitIfPresent(1, "", "RIN", s.RecIDNumber)
	e.encodeChangeDate(1, s.ChangeDate)
}
