package gedcom

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

func (e *encoder) encodeFamily(xref string, f *model.Family) {
	e.emitTag(0, xref, "FAM")
	e.encodeEvents(1, f.Events, true)
	e.pointerIfPresent(1, "HUSB", "individual", f.HusbandXRef, e.hasIndividual)
	e.pointerIfPresent(1, "WIFE", "individual", f.WifeXRef, e.hasIndividual)
	e.pointers(1, "CHIL", "individual", f.ChildXRefs, e.hasIndividual)
	e.emitIfPresent(1, "", "NCHI", f.NumChildren)
	e.pointers(1, "SUBM", "submitter", f.SubmitterXRefs, e.hasSubmitter)
	e.encodeCitations(1, f.Citations)
	e.encodeMultimediaLinks(1, f.Multimedia)
	e.encodeNotes(1, f.Notes)
	e.encodeUserReferences(1, f.UserReferences)
	e.emitIfPresent(1, "", "RIN", f.RecIDNumber)
	e.encodeChangeDate(1, f.ChangeDate)
}

func (e *encoder) encodeIndividual(xref string, ind *model.Individual) {
	e.emitTag(0, xref, "INDI")
	e.emitIfPresent(1, "", "RESN", ind.Restriction)
	for _, n := range ind.Names {
		if n != nil {
			e.encodePersonalName(1, n)
		}
	}
	e.emitIfPresent(1, "", "SEX", ind.Sex)
	e.encodeEvents(1, ind.Events, false)
	e.encodeEvents(1, ind.Attributes, false)

	for _, l := range ind.ChildToFamily {
		if l == nil {
			continue
		}
		e.pointer(1, "FAMC", "family", l.FamilyXRef, e.hasFamily)
		e.emitIfPresent(2, "", "PEDI", l.Pedigree)
		e.encodeNotes(2, l.Notes)
	}
	for _, l := range ind.SpouseToFamily {
		if l == nil {
			continue
		}
		e.pointer(1, "FAMS", "family", l.FamilyXRef, e.hasFamily)
		e.encodeNotes(2, l.Notes)
	}
	e.pointers(1, "SUBM", "submitter", ind.SubmitterXRefs, e.hasSubmitter)
	for _, a := range ind.Associations {
		if a == nil {
			continue
		}
		e.pointer(1, "ASSO", "record", a.XRef, e.hasAnyRecord)
		e.required(2, "TYPE", a.Type)
		e.required(2, "RELA", a.Relationship)
		e.encodeCitations(2, a.Citations)
		e.encodeNotes(2, a.Notes)
	}
	e.pointers(1, "ALIA", "individual", ind.Aliases, e.hasIndividual)
	e.pointers(1, "ANCI", "submitter", ind.AncestorInterest, e.hasSubmitter)
	e.pointers(1, "DESI", "submitter", ind.DescendantInterest, e.hasSubmitter)
	e.encodeCitations(1, ind.Citations)
	e.encodeMultimediaLinks(1, ind.Multimedia)
	e.encodeNotes(1, ind.Notes)
	e.emitIfPresent(1, "", "RFN", ind.PermanentRecFileNumber)
	e.emitIfPresent(1, "", "AFN", ind.AncestralFileNumber)
	e.encodeUserReferences(1, ind.UserReferences)
	e.emitIfPresent(1, "", "RIN", ind.RecIDNumber)
	e.encodeChangeDate(1, ind.ChangeDate)
}

func (e *encoder) encodePersonalName(level int, n *model.PersonalName) {
	e.emitOptional(level, "", "NAME", n.Basic)
	e.emitIfPresent(level+1, "", "NPFX", n.Prefix)
	e.emitIfPresent(level+1, "", "GIVN", n.Given)
	e.emitIfPresent(level+1, "", "NICK", n.Nickname)
	e.emitIfPresent(level+1, "", "SPFX", n.SurnamePrefix)
	e.emitIfPresent(level+1, "", "SURN", n.Surname)
	e.emitIfPresent(level+1, "", "NSFX", n.Suffix)
	e.encodeCitations(level+1, n.Citations)
	e.encodeNotes(level+1, n.Notes)
}

// familyLinkedEvents carry a FAMC sub-structure.
var familyLinkedEvents = map[string]bool{"BIRT": true, "CHR": true, "ADOP": true}

// encodeEvents writes events and attributes. Family events carry the
// spouses' ages ahead of the event detail.
func (e *encoder) encodeEvents(level int, events []*model.Event, family bool) {
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if strings.TrimSpace(ev.Tag) == "" {
			e.fail(errors.NewEncode("EVEN", level, "event has no tag"))
			return
		}
		e.emitOptional(level, "", ev.Tag, ev.Value)
		e.encodeEvent(level, ev, family)
	}
}

func (e *encoder) encodeEvent(level int, ev *model.Event, family bool) {
	if family {
		if ev.HusbandAge != "" {
			e.emitTag(level+1, "", "HUSB")
			e.line(level+2, "", "AGE", ev.HusbandAge)
		}
		if ev.WifeAge != "" {
			e.emitTag(level+1, "", "WIFE")
			e.line(level+2, "", "AGE", ev.WifeAge)
		}
	}
	e.emitIfPresent(level+1, "", "TYPE", ev.Type)
	e.emitIfPresent(level+1, "", "DATE", ev.Date)
	if p := ev.Place; p != nil {
		e.emitOptional(level+1, "", "PLAC", p.Name)
		e.emitIfPresent(level+2, "", "FORM", p.Form)
		e.encodeCitations(level+2, p.Citations)
		e.encodeNotes(level+2, p.Notes)
	}
	e.encodeAddress(level+1, ev.Address)
	e.emitIfPresent(level+1, "", "AGE", ev.Age)
	e.emitIfPresent(level+1, "", "AGNC", ev.RespAgency)
	e.emitIfPresent(level+1, "", "CAUS", ev.Cause)
	e.encodeCitations(level+1, ev.Citations)
	e.encodeMultimediaLinks(level+1, ev.Multimedia)
	e.encodeNotes(level+1, ev.Notes)
	if familyLinkedEvents[ev.Tag] && ev.FamilyXRef != "" {
		e.pointer(level+1, "FAMC", "family", ev.FamilyXRef, e.hasFamily)
		if ev.Tag == "ADOP" {
			e.emitIfPresent(level+2, "", "ADOP", ev.AdoptedBy)
		}
	}
}
