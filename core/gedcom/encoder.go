package gedcom

import (
	"strings"

	"github.com/FocuswithJustin/gedcomkit/core/errors"
	"github.com/FocuswithJustin/gedcomkit/core/model"
)

// encoder walks a record graph and emits its lines. The emitter keeps the
// first failure and later calls become no-ops, so record encoders can be
// written as straight-line field lists.
type encoder struct {
	*emitter
	g *model.Gedcom
}

func newEncoder(g *model.Gedcom, eol string) *encoder {
	return &encoder{emitter: newEmitter(eol), g: g}
}

// required emits a line whose value must not be blank.
func (e *encoder) required(level int, tag, value string) {
	if e.err != nil {
		return
	}
	if err := e.emitRequired(level, "", tag, value); err != nil {
		e.fail(err)
	}
}

// pointer emits "level tag xref" after checking that xref names an
// existing record of the given resource kind.
func (e *encoder) pointer(level int, tag, resource, xref string, exists func(string) bool) {
	if e.err != nil {
		return
	}
	if strings.TrimSpace(xref) == "" {
		e.fail(errors.NewEncode(tag, level, "required value was null or blank"))
		return
	}
	if !exists(xref) {
		e.fail(&errors.EncodeError{
			Tag:     tag,
			Level:   level,
			Message: "cross-reference " + xref + " does not resolve",
			Err:     errors.NewNotFound(resource, xref),
		})
		return
	}
	e.line(level, "", tag, xref)
}

// pointerIfPresent is pointer for optional links.
func (e *encoder) pointerIfPresent(level int, tag, resource, xref string, exists func(string) bool) {
	if xref == "" {
		return
	}
	e.pointer(level, tag, resource, xref, exists)
}

// pointers emits one pointer line per entry. Blank entries are skipped.
func (e *encoder) pointers(level int, tag, resource string, xrefs []string, exists func(string) bool) {
	for _, x := range xrefs {
		if strings.TrimSpace(x) == "" {
			continue
		}
		e.pointer(level, tag, resource, x, exists)
	}
}

func (e *encoder) hasSubmitter(x string) bool  { return e.g.Submitters.Has(x) }
func (e *encoder) hasIndividual(x string) bool { return e.g.Individuals.Has(x) }
func (e *encoder) hasFamily(x string) bool     { return e.g.Families.Has(x) }
func (e *encoder) hasMultimedia(x string) bool { return e.g.Multimedia.Has(x) }
func (e *encoder) hasNote(x string) bool       { return e.g.Notes.Has(x) }
func (e *encoder) hasRepository(x string) bool { return e.g.Repositories.Has(x) }
func (e *encoder) hasSource(x string) bool     { return e.g.Sources.Has(x) }

func (e *encoder) hasSubmission(x string) bool {
	return e.g.Submission != nil && e.g.Submission.XRef == x
}

// hasAnyRecord reports whether x names a top-level record of any kind. ASSO
// links may point at any record type.
func (e *encoder) hasAnyRecord(x string) bool {
	return e.hasSubmission(x) || e.hasSubmitter(x) || e.hasIndividual(x) ||
		e.hasFamily(x) || e.hasMultimedia(x) || e.hasNote(x) ||
		e.hasRepository(x) || e.hasSource(x)
}

// record is one encoded top-level record.
type record struct {
	kind model.Kind
	xref string
	from int
	to   int
}

// encodeGedcom writes the whole document in the fixed record order and
// returns the byte span of every top-level record.
func (e *encoder) encodeGedcom() []record {
	g := e.g
	var spans []record
	mark := func(kind model.Kind, xref string, write func()) {
		from := e.buf.Len()
		write()
		spans = append(spans, record{kind: kind, xref: xref, from: from, to: e.buf.Len()})
	}

	h := g.Header
	if h == nil {
		h = model.NewHeader()
	}
	mark(model.KindHeader, "", func() { e.encodeHeader(h) })

	if s := g.Submission; s != nil {
		mark(model.KindSubmission, s.XRef, func() { e.encodeSubmission(s) })
	}
	g.Submitters.Each(func(key string, s *model.Submitter) bool {
		if s != nil {
			mark(model.KindSubmitter, key, func() { e.encodeSubmitter(key, s) })
		}
		return e.err == nil
	})
	g.Individuals.Each(func(key string, i *model.Individual) bool {
		if i != nil {
			mark(model.KindIndividual, key, func() { e.encodeIndividual(key, i) })
		}
		return e.err == nil
	})
	g.Families.Each(func(key string, f *model.Family) bool {
		if f != nil {
			mark(model.KindFamily, key, func() { e.encodeFamily(key, f) })
		}
		return e.err == nil
	})
	g.Multimedia.Each(func(key string, m *model.Multimedia) bool {
		if m != nil {
			mark(model.KindMultimedia, key, func() { e.encodeMultimedia(key, m) })
		}
		return e.err == nil
	})
	g.Notes.Each(func(key string, n *model.NoteRecord) bool {
		if n != nil {
			mark(model.KindNoteRecord, key, func() { e.encodeNoteRecord(key, n) })
		}
		return e.err == nil
	})
	g.Repositories.Each(func(key string, r *model.Repository) bool {
		if r != nil {
			mark(model.KindRepository, key, func() { e.encodeRepository(key, r) })
		}
		return e.err == nil
	})
	g.Sources.Each(func(key string, s *model.Source) bool {
		if s != nil {
			mark(model.KindSource, key, func() { e.encodeSource(key, s) })
		}
		return e.err == nil
	})

	mark(model.KindTrailer, "", func() { e.emitTag(0, "", "TRLR") })
	return spans
}
