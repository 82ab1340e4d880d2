package gedcom

import (
	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// encodeAddress writes an ADDRESS_STRUCTURE. ADDR is written bare when the
// address has no free-form lines.
func (e *encoder) encodeAddress(level int, a *model.Address) {
	if a == nil {
		return
	}
	if len(a.Lines) == 0 {
		e.emitTag(level, "", "ADDR")
	} else {
		e.emitLines(level, "", "ADDR", a.Lines)
	}
	e.emitIfPresent(level+1, "", "ADR1", a.Addr1)
	e.emitIfPresent(level+1, "", "ADR2", a.Addr2)
	e.emitIfPresent(level+1, "", "CITY", a.City)
	e.emitIfPresent(level+1, "", "STAE", a.StateProvince)
	e.emitIfPresent(level+1, "", "POST", a.PostalCode)
	e.emitIfPresent(level+1, "", "CTRY", a.Country)
}

func (e *encoder) encodePhoneNumbers(level int, phones []string) {
	for _, p := range phones {
		e.emitIfPresent(level, "", "PHON", p)
	}
}

func (e *encoder) encodeChangeDate(level int, cd *model.ChangeDate) {
	if cd == nil {
		return
	}
	e.emitTag(level, "", "CHAN")
	e.required(level+1, "DATE", cd.Date)
	e.emitIfPresent(level+2, "", "TIME", cd.Time)
	e.encodeNotes(level+1, cd.Notes)
}

func (e *encoder) encodeUserReferences(level int, refs []*model.UserReference) {
	for _, u := range refs {
		if u == nil {
			continue
		}
		e.required(level, "REFN", u.ReferenceNum)
		e.emitIfPresent(level+1, "", "TYPE", u.Type)
	}
}

// encodeNotes writes NOTE_STRUCTUREs: a pointer to a note record or inline
// text, each followed by its citations.
func (e *encoder) encodeNotes(level int, notes []*model.NoteStructure) {
	for _, n := range notes {
		if n == nil {
			continue
		}
		switch {
		case n.XRef != "":
			e.pointer(level, "NOTE", "note", n.XRef, e.hasNote)
		case len(n.Lines) == 0:
			e.emitTag(level, "", "NOTE")
		default:
			e.emitLines(level, "", "NOTE", n.Lines)
		}
		e.encodeCitations(level+1, n.Citations)
	}
}

// encodeCitations writes SOURCE_CITATIONs in either the pointer or the
// description form.
func (e *encoder) encodeCitations(level int, citations []*model.Citation) {
	for _, c := range citations {
		if c == nil {
			continue
		}
		switch {
		case c.SourceXRef != "":
			e.encodePointerCitation(level, c)
		case len(c.Description) > 0:
			e.emitLines(level, "", "SOUR", c.Description)
			for _, text := range c.TextFromSource {
				e.emitLines(level+1, "", "TEXT", text)
			}
			e.encodeNotes(level+1, c.Notes)
		default:
			e.fail(errors.NewEncode("SOUR", level, "citation has neither a source reference nor a description"))
		}
	}
}

func (e *encoder) encodePointerCitation(level int, c *model.Citation) {
	e.pointer(level, "SOUR", "source", c.SourceXRef, e.hasSource)
	e.emitIfPresent(level+1, "", "PAGE", c.Page)
	if c.EventCited != "" {
		e.line(level+1, "", "EVEN", c.EventCited)
		e.emitIfPresent(level+2, "", "ROLE", c.RoleInEvent)
	}
	if d := c.Data; d != nil {
		e.emitTag(level+1, "", "DATA")
		e.emitIfPresent(level+2, "", "DATE", d.EntryDate)
		for _, text := range d.Text {
			e.emitLines(level+2, "", "TEXT", text)
		}
	}
	e.encodeMultimediaLinks(level+1, c.Multimedia)
	e.encodeNotes(level+1, c.Notes)
	e.emitIfPresent(level+1, "", "QUAY", c.Certainty)
}

// encodeMultimediaLinks writes OBJE links: a pointer to a multimedia record
// or an inline description of an external file.
func (e *encoder) encodeMultimediaLinks(level int, links []*model.MultimediaLink) {
	for _, m := range links {
		if m == nil {
			continue
		}
		if m.XRef != "" {
			e.pointer(level, "OBJE", "multimedia", m.XRef, e.hasMultimedia)
			continue
		}
		e.emitTag(level, "", "OBJE")
		e.required(level+1, "FORM", m.Format)
		e.emitIfPresent(level+1, "", "TITL", m.Title)
		e.required(level+1, "FILE", m.FileReference)
		e.encodeNotes(level+1, m.Notes)
	}
}
